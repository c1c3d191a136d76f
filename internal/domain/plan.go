package domain

import (
	"github.com/shopspring/decimal"
)

// Plan is the top-level structure of a YAML plan file: a default input and
// named scenarios that override parts of it.
type Plan struct {
	StartYear int                `yaml:"start_year,omitempty" json:"start_year,omitempty"`
	Defaults  ProjectionInput    `yaml:"defaults" json:"defaults"`
	Scenarios []ScenarioOverride `yaml:"scenarios" json:"scenarios"`
}

// ScenarioOverride names a scenario. Nil fields inherit the plan defaults.
type ScenarioOverride struct {
	Name                      string           `yaml:"name" json:"name"`
	InitialInvestment         *decimal.Decimal `yaml:"initial_investment,omitempty" json:"initial_investment,omitempty"`
	MonthlyContribution       *decimal.Decimal `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty"`
	AnnualInterestRatePercent *decimal.Decimal `yaml:"annual_interest_rate_percent,omitempty" json:"annual_interest_rate_percent,omitempty"`
	MarginalTaxRatePercent    *decimal.Decimal `yaml:"marginal_tax_rate_percent,omitempty" json:"marginal_tax_rate_percent,omitempty"`
	HorizonYears              *int             `yaml:"horizon_years,omitempty" json:"horizon_years,omitempty"`
	AccountRegime             *AccountRegime   `yaml:"account_regime,omitempty" json:"account_regime,omitempty"`
}

// Apply merges the override onto base and returns the resulting input.
func (so ScenarioOverride) Apply(base ProjectionInput) ProjectionInput {
	out := base
	if so.InitialInvestment != nil {
		out.InitialInvestment = *so.InitialInvestment
	}
	if so.MonthlyContribution != nil {
		out.MonthlyContribution = *so.MonthlyContribution
	}
	if so.AnnualInterestRatePercent != nil {
		out.AnnualInterestRatePercent = *so.AnnualInterestRatePercent
	}
	if so.MarginalTaxRatePercent != nil {
		out.MarginalTaxRatePercent = *so.MarginalTaxRatePercent
	}
	if so.HorizonYears != nil {
		out.HorizonYears = *so.HorizonYears
	}
	if so.AccountRegime != nil {
		out.AccountRegime = *so.AccountRegime
	}
	return out
}

// NamedInput pairs a scenario name with its fully resolved input.
type NamedInput struct {
	Name  string
	Input ProjectionInput
}

// Resolve expands every scenario against the defaults. A plan without
// scenarios resolves to a single "Default" scenario.
func (p *Plan) Resolve() []NamedInput {
	if len(p.Scenarios) == 0 {
		return []NamedInput{{Name: "Default", Input: p.Defaults}}
	}
	out := make([]NamedInput, 0, len(p.Scenarios))
	for _, sc := range p.Scenarios {
		out = append(out, NamedInput{Name: sc.Name, Input: sc.Apply(p.Defaults)})
	}
	return out
}

// Scenario looks up a resolved scenario by name.
func (p *Plan) Scenario(name string) (NamedInput, bool) {
	for _, ni := range p.Resolve() {
		if ni.Name == name {
			return ni, true
		}
	}
	return NamedInput{}, false
}
