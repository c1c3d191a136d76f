package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// Summarize derives the headline figures of a projection.
func Summarize(in domain.ProjectionInput, series domain.ProjectionSeries) domain.ProjectionSummary {
	final := series.Final()
	summary := domain.ProjectionSummary{
		AccountName:   in.AccountRegime.DisplayName(),
		FinalValue:    final.ProjectedValue,
		TotalInvested: final.CumulativeContributions,
		TotalReturns:  final.CumulativeGrowth,
		ReturnsShare:  decimal.Zero,
	}
	if !final.ProjectedValue.IsZero() {
		summary.ReturnsShare = final.CumulativeGrowth.Div(final.ProjectedValue).Mul(decimalHundred)
	}

	for _, p := range series {
		if p.Year == 0 {
			continue
		}
		if summary.BestYear == 0 || p.YearGrowth.GreaterThan(summary.BestYearGrowth) {
			summary.BestYear = p.Year
			summary.BestYearGrowth = p.YearGrowth
		}
	}
	return summary
}

// Analyze ranks scenarios by final projected value.
func Analyze(results []domain.ScenarioResult) domain.ComparisonAnalysis {
	if len(results) == 0 {
		return domain.ComparisonAnalysis{}
	}
	best, worst := results[0], results[0]
	for _, r := range results[1:] {
		if r.Summary.FinalValue.GreaterThan(best.Summary.FinalValue) {
			best = r
		}
		if r.Summary.FinalValue.LessThan(worst.Summary.FinalValue) {
			worst = r
		}
	}
	return domain.ComparisonAnalysis{
		BestScenario:  best.Name,
		WorstScenario: worst.Name,
		Spread:        best.Summary.FinalValue.Sub(worst.Summary.FinalValue),
	}
}

// BuildReport assembles a report from finished scenario results.
func BuildReport(results []domain.ScenarioResult, startYear int, assumptions []string) *domain.ProjectionReport {
	title := "Scenario Comparison"
	if len(results) == 1 {
		title = "Projected Growth for " + results[0].Input.AccountRegime.DisplayName()
	}
	return &domain.ProjectionReport{
		Title:       title,
		GeneratedAt: nowFunc(),
		StartYear:   startYear,
		Scenarios:   results,
		Analysis:    Analyze(results),
		Assumptions: assumptions,
	}
}
