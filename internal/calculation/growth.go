package calculation

import (
	"github.com/shopspring/decimal"
)

// workingPrecision is the number of decimal places kept by compounding and
// division steps. Exact products would grow without bound over 1200 months.
const workingPrecision int32 = 28

var (
	decimalOne             = decimal.NewFromInt(1)
	monthsPerYear          = decimal.NewFromInt(12)
	percentPerMonthDivisor = decimal.NewFromInt(1200)
)

// MonthlyRate converts an annual percentage rate to a periodic monthly rate (annual/100/12).
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.DivRound(percentPerMonthDivisor, workingPrecision)
}

// GrowthFactor returns (1+monthlyRate)^months using square-and-multiply.
func GrowthFactor(monthlyRate decimal.Decimal, months int) decimal.Decimal {
	result := decimalOne
	if months <= 0 {
		return result
	}
	base := decimalOne.Add(monthlyRate)
	for n := months; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base).Round(workingPrecision)
		}
		if n > 1 {
			base = base.Mul(base).Round(workingPrecision)
		}
	}
	return result
}

// FutureValue returns the pre-tax value of an initial lump sum plus a level
// monthly contribution stream after the given number of months of monthly
// compounding. A zero rate degenerates to linear accumulation.
func FutureValue(initial, monthlyContribution, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return initial
	}
	factor := GrowthFactor(monthlyRate, months)
	lumpSum := initial.Mul(factor)

	var stream decimal.Decimal
	if monthlyRate.IsZero() {
		stream = monthlyContribution.Mul(decimal.NewFromInt(int64(months)))
	} else {
		stream = monthlyContribution.Mul(factor.Sub(decimalOne).DivRound(monthlyRate, workingPrecision))
	}
	return lumpSum.Add(stream)
}

// ContributionsThrough returns initial plus every monthly contribution made in the first months.
func ContributionsThrough(initial, monthlyContribution decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return initial
	}
	return initial.Add(monthlyContribution.Mul(decimal.NewFromInt(int64(months))))
}
