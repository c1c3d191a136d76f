package output

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/pkg/money"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals and thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatWholeCurrency formats a decimal as whole US dollars ($12,345).
func FormatWholeCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Whole()
}

// FormatCompact formats a decimal as a short chart label ($1.2M, $12K, $950).
func FormatCompact(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Compact() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
