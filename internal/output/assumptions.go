package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/calculation"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions that hold for every projection.
var DefaultAssumptions = []string{
	"Interest compounds monthly at one twelfth of the annual rate",
	"Contributions are made at the end of each month",
	"Amounts are nominal; inflation, fees and contribution limits are not modeled",
}

// GenerateAssumptions creates the assumptions list from the inputs actually projected.
func GenerateAssumptions(inputs []domain.ProjectionInput) []string {
	if len(inputs) == 0 {
		return DefaultAssumptions
	}

	minRate, maxRate := inputs[0].AnnualInterestRatePercent, inputs[0].AnnualInterestRatePercent
	regimes := map[domain.AccountRegime]bool{}
	var taxRates []decimal.Decimal
	for _, in := range inputs {
		minRate = decimal.Min(minRate, in.AnnualInterestRatePercent)
		maxRate = decimal.Max(maxRate, in.AnnualInterestRatePercent)
		regimes[in.AccountRegime] = true
		if in.AccountRegime == domain.RegimeTaxDeferred {
			taxRates = appendUnique(taxRates, in.MarginalTaxRatePercent)
		}
	}

	var out []string
	if minRate.Equal(maxRate) {
		out = append(out, fmt.Sprintf("Annual return: %s compounded monthly (%s per month)",
			FormatPercentage(minRate), calculation.MonthlyRate(minRate).Mul(decimalHundred).StringFixed(4)+"%"))
	} else {
		out = append(out, fmt.Sprintf("Annual return: %s to %s compounded monthly, varying by scenario",
			FormatPercentage(minRate), FormatPercentage(maxRate)))
	}

	for _, r := range domain.AllRegimes {
		if !regimes[r] {
			continue
		}
		switch r {
		case domain.RegimeTaxable:
			out = append(out, "Taxable Brokerage: growth shown before tax on dividends and capital gains")
		case domain.RegimeTaxDeferred:
			rates := make([]string, len(taxRates))
			for i, tr := range taxRates {
				rates[i] = FormatPercentage(tr)
			}
			out = append(out, fmt.Sprintf("Traditional IRA: once the balance exceeds total contributions, the whole balance is taxed at %s on withdrawal",
				joinOr(rates)))
		case domain.RegimeTaxFree:
			out = append(out, "Roth IRA: withdrawals assumed qualified and tax free")
		}
	}

	return append(out, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)

func appendUnique(list []decimal.Decimal, d decimal.Decimal) []decimal.Decimal {
	for _, existing := range list {
		if existing.Equal(d) {
			return list
		}
	}
	return append(list, d)
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	out := items[0]
	for _, s := range items[1 : len(items)-1] {
		out += ", " + s
	}
	return out + " or " + items[len(items)-1]
}
