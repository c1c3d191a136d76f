package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AccountRegime is the tax treatment applied to a projected balance.
// The set is closed; the zero value is not a valid regime.
type AccountRegime int

const (
	// RegimeTaxable is a plain brokerage account. Growth taxation is not modeled.
	RegimeTaxable AccountRegime = iota + 1
	// RegimeTaxDeferred is a traditional (pre-tax contribution) account.
	RegimeTaxDeferred
	// RegimeTaxFree is a roth account; qualified withdrawals are untaxed.
	RegimeTaxFree
)

// AllRegimes lists every regime in reporting order.
var AllRegimes = []AccountRegime{RegimeTaxable, RegimeTaxDeferred, RegimeTaxFree}

var regimeAliases = map[string]AccountRegime{
	"taxable":      RegimeTaxable,
	"brokerage":    RegimeTaxable,
	"traditional":  RegimeTaxDeferred,
	"tax_deferred": RegimeTaxDeferred,
	"tax-deferred": RegimeTaxDeferred,
	"roth":         RegimeTaxFree,
	"tax_free":     RegimeTaxFree,
	"tax-free":     RegimeTaxFree,
}

// ParseAccountRegime resolves a regime from its text form or one of its aliases.
func ParseAccountRegime(s string) (AccountRegime, error) {
	r, ok := regimeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown account regime %q (want taxable, traditional or roth)", s)
	}
	return r, nil
}

// Valid reports whether r is one of the enumerated regimes.
func (r AccountRegime) Valid() bool {
	return r >= RegimeTaxable && r <= RegimeTaxFree
}

// String returns the canonical text form used in plan files and flags.
func (r AccountRegime) String() string {
	switch r {
	case RegimeTaxable:
		return "taxable"
	case RegimeTaxDeferred:
		return "traditional"
	case RegimeTaxFree:
		return "roth"
	default:
		return fmt.Sprintf("AccountRegime(%d)", int(r))
	}
}

// DisplayName is the account label shown in reports.
func (r AccountRegime) DisplayName() string {
	switch r {
	case RegimeTaxable:
		return "Taxable Brokerage"
	case RegimeTaxDeferred:
		return "Traditional IRA"
	case RegimeTaxFree:
		return "Roth IRA"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r AccountRegime) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid account regime %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *AccountRegime) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountRegime(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML writes the canonical text form.
func (r AccountRegime) MarshalYAML() (interface{}, error) {
	b, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UnmarshalYAML accepts any alias understood by ParseAccountRegime.
func (r *AccountRegime) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
