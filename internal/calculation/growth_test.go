package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

func TestMonthlyRate(t *testing.T) {
	assert.True(t, MonthlyRate(decimal.NewFromInt(12)).Equal(dec(0.01)))
	assert.True(t, MonthlyRate(decimal.Zero).IsZero())
	assertClose(t, dec(0.0058333333), MonthlyRate(decimal.NewFromInt(7)), 0.0000000001)
}

func TestGrowthFactor(t *testing.T) {
	rate := MonthlyRate(decimal.NewFromInt(7))

	assert.True(t, GrowthFactor(rate, 0).Equal(decimalOne))
	assert.True(t, GrowthFactor(rate, -3).Equal(decimalOne))
	assert.True(t, GrowthFactor(rate, 1).Equal(decimalOne.Add(rate)))
	assertClose(t, dec(1.072290080856236), GrowthFactor(rate, 12), 0.000000000001)

	// square-and-multiply must agree with repeated multiplication
	naive := decimalOne
	for i := 0; i < 37; i++ {
		naive = naive.Mul(decimalOne.Add(rate)).Round(workingPrecision)
	}
	assertClose(t, naive, GrowthFactor(rate, 37), 0.0000000000000001)

	assert.True(t, GrowthFactor(decimal.Zero, 600).Equal(decimalOne))
}

func TestGrowthFactor_PrecisionBounded(t *testing.T) {
	f := GrowthFactor(MonthlyRate(decimal.NewFromInt(7)), 1200)
	assert.LessOrEqual(t, -f.Exponent(), workingPrecision)
}

func TestFutureValue(t *testing.T) {
	rate := MonthlyRate(decimal.NewFromInt(7))

	t.Run("no months returns initial", func(t *testing.T) {
		assert.True(t, FutureValue(dec(10000), dec(500), rate, 0).Equal(dec(10000)))
	})

	t.Run("one year", func(t *testing.T) {
		assertClose(t, dec(16919.19), FutureValue(dec(10000), dec(500), rate, 12), 0.01)
	})

	t.Run("contributions only", func(t *testing.T) {
		// 500 * ((1+r)^12 - 1) / r
		assertClose(t, dec(6196.29), FutureValue(decimal.Zero, dec(500), rate, 12), 0.01)
	})

	t.Run("zero rate is linear", func(t *testing.T) {
		got := FutureValue(dec(1000), dec(250), decimal.Zero, 18)
		assert.True(t, got.Equal(dec(5500)), "got %s", got)
	})
}

func TestContributionsThrough(t *testing.T) {
	assert.True(t, ContributionsThrough(dec(10000), dec(500), 0).Equal(dec(10000)))
	assert.True(t, ContributionsThrough(dec(10000), dec(500), 12).Equal(dec(16000)))
	assert.True(t, ContributionsThrough(decimal.Zero, dec(99.99), 360).Equal(dec(35996.4)))
}

func TestApplyRegime(t *testing.T) {
	tax := decimal.NewFromInt(25)
	contributions := dec(16000)

	tests := []struct {
		name   string
		regime domain.AccountRegime
		preTax decimal.Decimal
		want   decimal.Decimal
	}{
		{"taxable passes through", domain.RegimeTaxable, dec(20000), dec(20000)},
		{"tax free passes through", domain.RegimeTaxFree, dec(20000), dec(20000)},
		{"traditional taxes whole balance", domain.RegimeTaxDeferred, dec(20000), dec(15000)},
		{"traditional at contributions untaxed", domain.RegimeTaxDeferred, dec(16000), dec(16000)},
		{"traditional below contributions untaxed", domain.RegimeTaxDeferred, dec(12000), dec(12000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyRegime(tt.regime, tt.preTax, contributions, tax)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "want %s got %s", tt.want, got)
		})
	}

	t.Run("unknown regime", func(t *testing.T) {
		_, err := ApplyRegime(domain.AccountRegime(42), dec(1), dec(1), tax)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero tax rate", func(t *testing.T) {
		got, err := ApplyRegime(domain.RegimeTaxDeferred, dec(20000), contributions, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, got.Equal(dec(20000)))
	})
}

func TestInputError_Message(t *testing.T) {
	err := ValidateInput(domain.ProjectionInput{
		InitialInvestment: dec(-5),
		HorizonYears:      10,
		AccountRegime:     domain.RegimeTaxFree,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid projection input")
	assert.Contains(t, err.Error(), "initial_investment")
	assert.Contains(t, err.Error(), "-5")
}
