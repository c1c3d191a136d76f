package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionInput holds the savings-plan parameters for a single projection.
type ProjectionInput struct {
	InitialInvestment         decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
	MonthlyContribution       decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualInterestRatePercent decimal.Decimal `yaml:"annual_interest_rate_percent" json:"annual_interest_rate_percent"`
	MarginalTaxRatePercent    decimal.Decimal `yaml:"marginal_tax_rate_percent" json:"marginal_tax_rate_percent"` // only used by traditional accounts
	HorizonYears              int             `yaml:"horizon_years" json:"horizon_years"`
	AccountRegime             AccountRegime   `yaml:"account_regime" json:"account_regime"`
}

// WithRegime returns a copy of the input under a different account regime.
func (pi ProjectionInput) WithRegime(r AccountRegime) ProjectionInput {
	pi.AccountRegime = r
	return pi
}

// YearlyPoint is one year-end entry of a projection.
type YearlyPoint struct {
	Year                    int             `json:"year"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
	ProjectedValue          decimal.Decimal `json:"projected_value"`
	CumulativeGrowth        decimal.Decimal `json:"cumulative_growth"`
	YearContributions       decimal.Decimal `json:"year_contributions"`
	YearGrowth              decimal.Decimal `json:"year_growth"`
}

// ProjectionSeries is the ordered year 0..N trajectory. Index 0 is the seed record.
type ProjectionSeries []YearlyPoint

// Final returns the last point of the series, or the zero point for an empty series.
func (ps ProjectionSeries) Final() YearlyPoint {
	if len(ps) == 0 {
		return YearlyPoint{}
	}
	return ps[len(ps)-1]
}

// Values returns projected values as floats, for charting.
func (ps ProjectionSeries) Values() []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.ProjectedValue.InexactFloat64()
	}
	return out
}

// ProjectionSummary provides the headline aggregates of a projection
type ProjectionSummary struct {
	AccountName    string          `json:"account_name"`
	FinalValue     decimal.Decimal `json:"final_value"`
	TotalInvested  decimal.Decimal `json:"total_invested"`
	TotalReturns   decimal.Decimal `json:"total_returns"`
	ReturnsShare   decimal.Decimal `json:"returns_share_percent"` // TotalReturns as a percentage of FinalValue
	BestYear       int             `json:"best_year"`
	BestYearGrowth decimal.Decimal `json:"best_year_growth"`
}

// ScenarioResult is a named projection and its summary
type ScenarioResult struct {
	Name    string            `json:"name"`
	Input   ProjectionInput   `json:"input"`
	Series  ProjectionSeries  `json:"series"`
	Summary ProjectionSummary `json:"summary"`
}

// ComparisonAnalysis ranks scenarios by final projected value
type ComparisonAnalysis struct {
	BestScenario  string          `json:"best_scenario"`
	WorstScenario string          `json:"worst_scenario"`
	Spread        decimal.Decimal `json:"spread"`
}

// ProjectionReport is what formatters render.
type ProjectionReport struct {
	Title       string             `json:"title"`
	GeneratedAt time.Time          `json:"generated_at"`
	StartYear   int                `json:"start_year,omitempty"`
	Scenarios   []ScenarioResult   `json:"scenarios"`
	Analysis    ComparisonAnalysis `json:"analysis"`
	Assumptions []string           `json:"assumptions"`
}

// CalendarYear maps a projection year index to a calendar year when a start year is set.
func (pr *ProjectionReport) CalendarYear(year int) int {
	if pr.StartYear == 0 {
		return 0
	}
	return pr.StartYear + year
}
