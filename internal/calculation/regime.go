package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// ApplyRegime converts a pre-tax projected value into the value reported for
// the account regime.
//
// Traditional accounts are treated as fully taxable on withdrawal: once the
// balance exceeds what was contributed, the whole balance (not only the gains)
// is reduced by the marginal rate. Balances at or below contributions are
// returned unchanged.
func ApplyRegime(regime domain.AccountRegime, preTaxValue, cumulativeContributions, taxRatePercent decimal.Decimal) (decimal.Decimal, error) {
	switch regime {
	case domain.RegimeTaxable, domain.RegimeTaxFree:
		return preTaxValue, nil
	case domain.RegimeTaxDeferred:
		if preTaxValue.GreaterThan(cumulativeContributions) {
			keep := decimalOne.Sub(taxRatePercent.DivRound(decimalHundred, workingPrecision))
			return preTaxValue.Mul(keep), nil
		}
		return preTaxValue, nil
	default:
		return decimal.Zero, invalid("account_regime", "unrecognised regime %s", regime)
	}
}
