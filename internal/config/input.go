package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/calculation"
	"github.com/wealthpath/wealth-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates plan YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan checks scenario names and validates every resolved scenario
// with the projection engine's rules.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan.StartYear < 0 {
		return fmt.Errorf("start_year cannot be negative")
	}

	seen := make(map[string]bool, len(plan.Scenarios))
	for i, sc := range plan.Scenarios {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			return fmt.Errorf("scenario %d: name cannot be empty", i)
		}
		if seen[name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, name)
		}
		seen[name] = true
	}

	for _, ni := range plan.Resolve() {
		if err := calculation.ValidateInput(ni.Input); err != nil {
			return fmt.Errorf("scenario %q: %w", ni.Name, err)
		}
	}

	return nil
}

// SelectScenarios resolves the plan and narrows it to one scenario when name is set.
func (ip *InputParser) SelectScenarios(plan *domain.Plan, name string) ([]domain.NamedInput, error) {
	if name == "" {
		return plan.Resolve(), nil
	}
	ni, ok := plan.Scenario(name)
	if !ok {
		names := make([]string, 0, len(plan.Scenarios))
		for _, sc := range plan.Scenarios {
			names = append(names, sc.Name)
		}
		return nil, fmt.Errorf("scenario %q not found (available: %s)", name, strings.Join(names, ", "))
	}
	return []domain.NamedInput{ni}, nil
}

// CreateExamplePlan creates an example plan for documentation
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	traditional := domain.RegimeTaxDeferred
	taxable := domain.RegimeTaxable
	doubled := decimal.NewFromInt(1000)
	cautious := decimal.NewFromInt(5)

	return &domain.Plan{
		StartYear: time.Now().Year(),
		Defaults:  DefaultInput(),
		Scenarios: []domain.ScenarioOverride{
			{Name: "Roth IRA"},
			{Name: "Traditional IRA", AccountRegime: &traditional},
			{Name: "Taxable Brokerage", AccountRegime: &taxable},
			{Name: "Roth IRA, Doubled Contributions", MonthlyContribution: &doubled},
			{Name: "Roth IRA, Conservative Returns", AnnualInterestRatePercent: &cautious},
		},
	}
}

// SavePlan writes a plan as YAML, creating parent directories as needed.
func (ip *InputParser) SavePlan(plan *domain.Plan, filename string) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// DefaultInput returns the calculator's out-of-the-box form values.
func DefaultInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		InitialInvestment:         decimal.NewFromInt(10000),
		MonthlyContribution:       decimal.NewFromInt(500),
		AnnualInterestRatePercent: decimal.NewFromInt(7),
		MarginalTaxRatePercent:    decimal.NewFromInt(25),
		HorizonYears:              30,
		AccountRegime:             domain.RegimeTaxFree,
	}
}
