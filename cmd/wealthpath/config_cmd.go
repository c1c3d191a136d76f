package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wealthpath/wealth-calculator/internal/config"
	"github.com/wealthpath/wealth-calculator/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	d := settings.Defaults

	fmt.Fprintf(out, "  Config file: %s\n", config.SettingsPath(configDir))
	if config.Exists(configDir) {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	in, err := d.Input()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "  [Defaults]")
	fmt.Fprintf(out, "    Initial investment:   %s\n", output.FormatCurrency(in.InitialInvestment))
	fmt.Fprintf(out, "    Monthly contribution: %s\n", output.FormatCurrency(in.MonthlyContribution))
	fmt.Fprintf(out, "    Annual return:        %s%%\n", in.AnnualInterestRatePercent)
	fmt.Fprintf(out, "    Marginal tax rate:    %s%%\n", in.MarginalTaxRatePercent)
	fmt.Fprintf(out, "    Years:                %d\n", d.Years)
	fmt.Fprintf(out, "    Account type:         %s\n", in.AccountRegime)
	if d.StartYear != 0 {
		fmt.Fprintf(out, "    Start year:           %d\n", d.StartYear)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Output]")
	fmt.Fprintf(out, "    Format:    %s\n", settings.Output.Format)
	fmt.Fprintf(out, "    Directory: %s\n", firstNonEmpty(settings.Output.Dir, "."))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [History]")
	if settings.History.Enabled {
		fmt.Fprintln(out, "    Enabled:  yes")
		fmt.Fprintf(out, "    Database: %s\n", settings.HistoryPath(dataDir))
	} else {
		fmt.Fprintln(out, "    Enabled:  no")
	}
	fmt.Fprintln(out)

	return nil
}
