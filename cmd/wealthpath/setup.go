package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/wealthpath/wealth-calculator/internal/calculation"
	"github.com/wealthpath/wealth-calculator/internal/config"
	"github.com/wealthpath/wealth-calculator/internal/domain"
	"github.com/wealthpath/wealth-calculator/internal/output"
	"github.com/wealthpath/wealth-calculator/pkg/money"
)

var hundred = decimal.NewFromInt(100)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set default projection values interactively",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupWizard reads answers line by line. A blank answer keeps the current value.
type setupWizard struct {
	in      *bufio.Reader
	out     io.Writer
	cfg     config.Settings
	preview *calculation.LatestRunner
	cmd     *cobra.Command
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Start from the file, not the env-adjusted settings, so overrides are not persisted.
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	w := &setupWizard{
		in:      bufio.NewReader(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
		cfg:     cfg,
		preview: calculation.NewLatestRunner(newEngine()),
		cmd:     cmd,
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "  Welcome to wealthpath!")
	fmt.Fprintln(w.out, "  Press enter to keep the value in brackets.")
	fmt.Fprintln(w.out)

	d := &w.cfg.Defaults
	d.InitialInvestment = w.amount("1. Initial investment", d.InitialInvestment)
	d.MonthlyContribution = w.amount("2. Monthly contribution", d.MonthlyContribution)
	if monthly, err := money.NewMoneyFromString(d.MonthlyContribution); err == nil {
		fmt.Fprintf(w.out, "     That is %s a year.\n", monthly.Annual().Format())
	}
	w.showPreview()
	d.AnnualRatePercent = w.percent("3. Expected annual return (%)", d.AnnualRatePercent)
	d.TaxRatePercent = w.percent("4. Marginal tax rate (%)", d.TaxRatePercent)
	d.Years = w.years("5. Years to project", d.Years)
	d.AccountType = w.account(d.AccountType)
	w.showPreview()

	w.cfg.Output.Format = w.format(w.cfg.Output.Format)
	w.cfg.History.Enabled = w.yesNo("8. Keep a history of runs?", w.cfg.History.Enabled)

	in, err := w.cfg.Defaults.Input()
	if err != nil {
		return err
	}
	if err := calculation.ValidateInput(in); err != nil {
		return fmt.Errorf("settings not saved: %w", err)
	}
	if err := config.Save(configDir, w.cfg); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	fmt.Fprintln(w.out)
	fmt.Fprintf(w.out, "  Saved to %s\n", config.SettingsPath(configDir))
	fmt.Fprintln(w.out, "  Run `wealthpath setup` anytime to reconfigure.")
	fmt.Fprintln(w.out)
	return nil
}

func (w *setupWizard) ask(label, current string) string {
	fmt.Fprintf(w.out, "  %s [%s]\n", label, current)
	fmt.Fprint(w.out, "     > ")
	line, _ := w.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (w *setupWizard) amount(label, current string) string {
	shown := current
	if m, err := money.NewMoneyFromString(current); err == nil {
		shown = m.Format()
	}
	for {
		answer := w.ask(label, shown)
		if answer == "" {
			return current
		}
		m, err := money.NewMoneyFromString(answer)
		if err == nil && !m.IsNegative() {
			return m.Decimal.String()
		}
		fmt.Fprintf(w.out, "     %q is not a dollar amount.\n", answer)
	}
}

func (w *setupWizard) percent(label, current string) string {
	for {
		answer := w.ask(label, current)
		if answer == "" {
			return current
		}
		d, err := parsePercent("percent", answer)
		if err == nil && !d.IsNegative() && d.LessThanOrEqual(hundred) {
			return d.String()
		}
		fmt.Fprintln(w.out, "     Enter a percentage between 0 and 100.")
	}
}

func (w *setupWizard) years(label string, current int) int {
	for {
		answer := w.ask(label, strconv.Itoa(current))
		if answer == "" {
			return current
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= calculation.MinHorizonYears && n <= calculation.MaxHorizonYears {
			return n
		}
		fmt.Fprintf(w.out, "     Enter a whole number of years between %d and %d.\n", calculation.MinHorizonYears, calculation.MaxHorizonYears)
	}
}

func (w *setupWizard) account(current string) string {
	fmt.Fprintln(w.out, "  6. Account type")
	for i, r := range domain.AllRegimes {
		marker := ""
		if r.String() == current {
			marker = " [current]"
		}
		fmt.Fprintf(w.out, "     (%d) %s%s\n", i+1, r.DisplayName(), marker)
	}
	fmt.Fprint(w.out, "     > ")
	line, _ := w.in.ReadString('\n')
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(domain.AllRegimes) {
		return current
	}
	return domain.AllRegimes[choice-1].String()
}

func (w *setupWizard) format(current string) string {
	for {
		answer := w.ask("7. Default report format ("+strings.Join(output.AvailableFormatterNames(), ", ")+", all)", current)
		if answer == "" {
			return current
		}
		if output.NormalizeFormatName(answer) == "all" || output.GetFormatterByName(answer) != nil {
			return output.NormalizeFormatName(answer)
		}
		fmt.Fprintf(w.out, "     Unknown format %q.\n", answer)
	}
}

func (w *setupWizard) yesNo(label string, current bool) bool {
	def := "y"
	if !current {
		def = "n"
	}
	switch strings.ToLower(w.ask(label+" (y/n)", def)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return current
	}
}

// showPreview projects the answers so far. Only the newest preview is shown.
func (w *setupWizard) showPreview() {
	in, err := w.cfg.Defaults.Input()
	if err != nil {
		return
	}
	res, ok := <-w.preview.Submit(w.cmd.Context(), in)
	if !ok {
		return
	}
	if res.Err != nil {
		fmt.Fprintf(w.out, "     Preview unavailable: %v\n\n", res.Err)
		return
	}
	final := res.Series.Final()
	fmt.Fprintf(w.out, "     Preview: %s after %d years in a %s.\n\n",
		output.FormatWholeCurrency(final.ProjectedValue), final.Year, in.AccountRegime.DisplayName())
}
