// Package money parses and formats dollar amounts held as decimals.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	twelve      = decimal.NewFromInt(12)
	oneThousand = decimal.NewFromInt(1_000)
	oneMillion  = decimal.NewFromInt(1_000_000)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string.
// A leading "$" and thousands separators are accepted.
func NewMoneyFromString(value string) (Money, error) {
	clean := strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(value), "$"), ",", "")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Format renders the amount as US dollars with cents: $1,234.57.
func (m Money) Format() string {
	return withSign(m.Decimal, func(abs decimal.Decimal) string {
		s := abs.StringFixed(2)
		dot := strings.IndexByte(s, '.')
		return "$" + groupThousands(s[:dot]) + s[dot:]
	})
}

// Whole renders the amount as whole US dollars: $12,345.
func (m Money) Whole() string {
	return withSign(m.Decimal, func(abs decimal.Decimal) string {
		return "$" + groupThousands(abs.StringFixed(0))
	})
}

// Compact renders a short axis label: $1.2M, $12K, $950.
func (m Money) Compact() string {
	return withSign(m.Decimal, func(abs decimal.Decimal) string {
		// The unit is chosen after rounding so 999,600 reads $1.0M, not $1000K.
		switch {
		case abs.Div(oneThousand).Round(0).GreaterThanOrEqual(oneThousand):
			return "$" + abs.Div(oneMillion).StringFixed(1) + "M"
		case abs.Round(0).GreaterThanOrEqual(oneThousand):
			return "$" + abs.Div(oneThousand).StringFixed(0) + "K"
		default:
			return "$" + abs.StringFixed(0)
		}
	})
}

// withSign renders |d| with render and prefixes a minus sign for negative
// amounts that do not round to zero.
func withSign(d decimal.Decimal, render func(decimal.Decimal) string) string {
	out := render(d.Abs())
	if d.IsNegative() && strings.ContainsAny(out, "123456789") {
		return "-" + out
	}
	return out
}

// groupThousands inserts commas into a string of digits.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
