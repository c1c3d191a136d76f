package calculation

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// ProjectionEngine turns a ProjectionInput into a year-by-year ProjectionSeries.
// It holds no state between invocations.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = orNop(l)
}

// Project validates the input and builds the full series: the year-0 seed
// followed by one point per year of the horizon.
//
// Each year's prior-year value is re-derived from the closed-form growth
// model at months-12 rather than carried over from the previous iteration.
func (pe *ProjectionEngine) Project(ctx context.Context, in domain.ProjectionInput) (domain.ProjectionSeries, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	logger := orNop(pe.Logger)

	rate := MonthlyRate(in.AnnualInterestRatePercent)
	yearContributions := in.MonthlyContribution.Mul(monthsPerYear)

	series := make(domain.ProjectionSeries, 0, in.HorizonYears+1)
	series = append(series, domain.YearlyPoint{
		Year:                    0,
		CumulativeContributions: in.InitialInvestment,
		ProjectedValue:          in.InitialInvestment,
		CumulativeGrowth:        decimal.Zero,
		YearContributions:       decimal.Zero,
		YearGrowth:              decimal.Zero,
	})

	var preTaxFinal, contributedFinal decimal.Decimal
	for year := 1; year <= in.HorizonYears; year++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		months := year * 12

		preTax, contributed, projected, err := valueAt(in, rate, months)
		if err != nil {
			return nil, err
		}
		_, _, previous, err := valueAt(in, rate, months-12)
		if err != nil {
			return nil, err
		}

		series = append(series, domain.YearlyPoint{
			Year:                    year,
			CumulativeContributions: contributed,
			ProjectedValue:          projected,
			CumulativeGrowth:        projected.Sub(contributed),
			YearContributions:       yearContributions,
			YearGrowth:              projected.Sub(previous).Sub(yearContributions),
		})
		preTaxFinal, contributedFinal = preTax, contributed
	}

	if in.AccountRegime == domain.RegimeTaxDeferred && in.MarginalTaxRatePercent.IsPositive() &&
		preTaxFinal.LessThanOrEqual(contributedFinal) {
		logger.Warnf("traditional projection shows no gains over %d years; marginal tax rate %s%% never applied",
			in.HorizonYears, in.MarginalTaxRatePercent)
	}
	logger.Debugf("projected %s over %d years: contributed=%s value=%s",
		in.AccountRegime, in.HorizonYears, contributedFinal.StringFixed(2), series.Final().ProjectedValue.StringFixed(2))

	return series, nil
}

// valueAt evaluates the growth model and regime adjustment at a month offset.
func valueAt(in domain.ProjectionInput, rate decimal.Decimal, months int) (preTax, contributed, projected decimal.Decimal, err error) {
	preTax = FutureValue(in.InitialInvestment, in.MonthlyContribution, rate, months)
	contributed = ContributionsThrough(in.InitialInvestment, in.MonthlyContribution, months)
	projected, err = ApplyRegime(in.AccountRegime, preTax, contributed, in.MarginalTaxRatePercent)
	return preTax, contributed, projected, err
}

var defaultEngine = NewProjectionEngine()

// Project runs the default engine on in.
func Project(in domain.ProjectionInput) (domain.ProjectionSeries, error) {
	return defaultEngine.Project(context.Background(), in)
}
