package money

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func fromFloat(v float64) Money {
	return NewMoneyFromDecimal(stddec.NewFromFloat(v))
}

func TestConstructors(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.StringFixed(2) != "123.45" {
		t.Fatalf("NewMoneyFromString mismatch: got %s", m3.Decimal)
	}

	m4, err := NewMoneyFromString(" $12,500.50 ")
	if err != nil {
		t.Fatalf("unexpected error for formatted input: %v", err)
	}
	if m4.StringFixed(2) != "12500.50" {
		t.Fatalf("formatted input mismatch: got %s", m4.Decimal)
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestAnnual(t *testing.T) {
	if got := fromFloat(500).Annual().Format(); got != "$6,000.00" {
		t.Fatalf("Annual got %s", got)
	}
	if got := fromFloat(0.01).Annual().Format(); got != "$0.12" {
		t.Fatalf("Annual of a cent got %s", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{999.999, "$1,000.00"},
		{-16919.19, "-$16,919.19"},
		{-0.001, "$0.00"},
	}
	for _, c := range cases {
		if got := fromFloat(c.in).Format(); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWhole(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{16919.19, "$16,919"},
		{691150.5, "$691,151"},
		{100000, "$100,000"},
		{-3310.6, "-$3,311"},
	}
	for _, c := range cases {
		if got := fromFloat(c.in).Whole(); got != c.want {
			t.Errorf("Whole(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{12345, "$12K"},
		{691150.47, "$691K"},
		{999.4, "$999"},
		{999.6, "$1K"},
		{999499, "$999K"},
		{999500, "$1.0M"},
		{999600, "$1.0M"},
		{999999.99, "$1.0M"},
		{1234567, "$1.2M"},
		{-999600, "-$1.0M"},
		{12000000, "$12.0M"},
		{-45000, "-$45K"},
	}
	for _, c := range cases {
		if got := fromFloat(c.in).Compact(); got != c.want {
			t.Errorf("Compact(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[string]string{
		"1":       "1",
		"123":     "123",
		"1234":    "1,234",
		"123456":  "123,456",
		"1234567": "1,234,567",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}
