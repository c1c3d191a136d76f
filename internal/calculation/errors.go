package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// ErrInvalidInput is returned (wrapped) for any projection input outside the supported domain.
var ErrInvalidInput = errors.New("invalid projection input")

// Input limits.
const (
	MinHorizonYears = 1
	MaxHorizonYears = 100
)

var (
	decimalZero    = decimal.Zero
	decimalHundred = decimal.NewFromInt(100)
)

// InputError describes which field violated the projection contract.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidateInput checks a ProjectionInput against the engine contract and
// returns the first violation found.
func ValidateInput(in domain.ProjectionInput) error {
	if in.InitialInvestment.LessThan(decimalZero) {
		return invalid("initial_investment", "cannot be negative (got %s)", in.InitialInvestment)
	}
	if in.MonthlyContribution.LessThan(decimalZero) {
		return invalid("monthly_contribution", "cannot be negative (got %s)", in.MonthlyContribution)
	}
	if err := validatePercent("annual_interest_rate_percent", in.AnnualInterestRatePercent); err != nil {
		return err
	}
	if err := validatePercent("marginal_tax_rate_percent", in.MarginalTaxRatePercent); err != nil {
		return err
	}
	if in.HorizonYears < MinHorizonYears || in.HorizonYears > MaxHorizonYears {
		return invalid("horizon_years", "must be between %d and %d (got %d)", MinHorizonYears, MaxHorizonYears, in.HorizonYears)
	}
	if !in.AccountRegime.Valid() {
		return invalid("account_regime", "unrecognised regime %s", in.AccountRegime)
	}
	return nil
}

func validatePercent(field string, v decimal.Decimal) error {
	if v.LessThan(decimalZero) || v.GreaterThan(decimalHundred) {
		return invalid(field, "must be between 0 and 100 (got %s)", v)
	}
	return nil
}
