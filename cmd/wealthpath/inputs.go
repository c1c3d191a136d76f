package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/wealthpath/wealth-calculator/internal/calculation"
	"github.com/wealthpath/wealth-calculator/internal/config"
	"github.com/wealthpath/wealth-calculator/internal/domain"
	"github.com/wealthpath/wealth-calculator/internal/store"
	"github.com/wealthpath/wealth-calculator/pkg/money"
)

// inputFlags are the projection form fields shared by project and compare.
type inputFlags struct {
	initial   string
	monthly   string
	rate      string
	taxRate   string
	years     int
	account   string
	startYear int
	plan      string
	scenario  string
	resume    bool
}

var formFlagNames = []string{"initial", "monthly", "rate", "tax-rate", "years", "account"}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.initial, "initial", "", "Initial investment in dollars (default from settings)")
	cmd.Flags().StringVar(&f.monthly, "monthly", "", "Monthly contribution in dollars (default from settings)")
	cmd.Flags().StringVar(&f.rate, "rate", "", "Expected annual return, percent (default from settings)")
	cmd.Flags().StringVar(&f.taxRate, "tax-rate", "", "Marginal tax rate, percent (default from settings)")
	cmd.Flags().IntVar(&f.years, "years", 0, "Horizon in whole years (default from settings)")
	cmd.Flags().StringVar(&f.account, "account", "", "Account type: roth, traditional or taxable (default from settings)")
	cmd.Flags().IntVar(&f.startYear, "start-year", 0, "Calendar year of year 0, used to label the breakdown")
	cmd.Flags().StringVar(&f.plan, "plan", "", "YAML plan file with named scenarios")
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "Run a single scenario from --plan")
}

// resolve turns flags, plan file, history and settings into named inputs and
// the start year used for calendar labels.
func (f *inputFlags) resolve(cmd *cobra.Command) ([]domain.NamedInput, int, error) {
	startYear := settings.Defaults.StartYear
	if cmd.Flags().Changed("start-year") {
		startYear = f.startYear
	}

	if f.plan != "" {
		for _, name := range formFlagNames {
			if cmd.Flags().Changed(name) {
				return nil, 0, fmt.Errorf("--%s cannot be combined with --plan", name)
			}
		}
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(f.plan)
		if err != nil {
			return nil, 0, err
		}
		named, err := parser.SelectScenarios(plan, f.scenario)
		if err != nil {
			return nil, 0, err
		}
		if !cmd.Flags().Changed("start-year") && plan.StartYear != 0 {
			startYear = plan.StartYear
		}
		return named, startYear, nil
	}
	if f.scenario != "" {
		return nil, 0, errors.New("--scenario requires --plan")
	}

	in, err := settings.Defaults.Input()
	if err != nil {
		return nil, 0, err
	}
	if f.resume {
		in, err = lastInput(cmd)
		if err != nil {
			return nil, 0, err
		}
	}
	if in, err = f.apply(cmd, in); err != nil {
		return nil, 0, err
	}
	if err := calculation.ValidateInput(in); err != nil {
		return nil, 0, err
	}
	return []domain.NamedInput{{Name: in.AccountRegime.DisplayName(), Input: in}}, startYear, nil
}

// apply overlays the form flags the user actually set.
func (f *inputFlags) apply(cmd *cobra.Command, in domain.ProjectionInput) (domain.ProjectionInput, error) {
	flags := cmd.Flags()
	var err error
	if flags.Changed("initial") {
		if in.InitialInvestment, err = parseAmount("initial", f.initial); err != nil {
			return in, err
		}
	}
	if flags.Changed("monthly") {
		if in.MonthlyContribution, err = parseAmount("monthly", f.monthly); err != nil {
			return in, err
		}
	}
	if flags.Changed("rate") {
		if in.AnnualInterestRatePercent, err = parsePercent("rate", f.rate); err != nil {
			return in, err
		}
	}
	if flags.Changed("tax-rate") {
		if in.MarginalTaxRatePercent, err = parsePercent("tax-rate", f.taxRate); err != nil {
			return in, err
		}
	}
	if flags.Changed("years") {
		in.HorizonYears = f.years
	}
	if flags.Changed("account") {
		if in.AccountRegime, err = domain.ParseAccountRegime(f.account); err != nil {
			return in, fmt.Errorf("--account: %w", err)
		}
	}
	return in, nil
}

func lastInput(cmd *cobra.Command) (domain.ProjectionInput, error) {
	h, err := openHistory()
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	if h == nil {
		return domain.ProjectionInput{}, errors.New("--resume needs run history, which is disabled")
	}
	defer h.Close()

	in, err := h.LastInput(cmd.Context())
	if errors.Is(err, store.ErrNoRuns) {
		return domain.ProjectionInput{}, fmt.Errorf("nothing to resume: %w", err)
	}
	return in, err
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	m, err := money.NewMoneyFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a dollar amount", flag, value)
	}
	return m.Decimal, nil
}

func parsePercent(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a percentage", flag, value)
	}
	return d, nil
}
