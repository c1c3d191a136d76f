package output

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName       string
	FinalValue         decimal.Decimal
	AdvantageOverWorst decimal.Decimal
	PercentageChange   decimal.Decimal // advantage relative to the worst final value
	WorstScenario      string
}

// AnalyzeScenarios picks the scenario with the highest final value and
// measures its lead over the lowest. Reports with fewer than two scenarios
// produce no recommendation.
func AnalyzeScenarios(report *domain.ProjectionReport) Recommendation {
	if report == nil || len(report.Scenarios) < 2 {
		return Recommendation{}
	}
	a := report.Analysis
	var best, worst domain.ScenarioResult
	for _, sc := range report.Scenarios {
		if sc.Name == a.BestScenario && best.Name == "" {
			best = sc
		}
		if sc.Name == a.WorstScenario && worst.Name == "" {
			worst = sc
		}
	}
	if best.Name == "" || worst.Name == "" {
		return Recommendation{}
	}

	pct := decimal.Zero
	if !worst.Summary.FinalValue.IsZero() {
		pct = a.Spread.Div(worst.Summary.FinalValue).Mul(decimalHundred)
	}
	return Recommendation{
		ScenarioName:       best.Name,
		FinalValue:         best.Summary.FinalValue,
		AdvantageOverWorst: a.Spread,
		PercentageChange:   pct,
		WorstScenario:      worst.Name,
	}
}
