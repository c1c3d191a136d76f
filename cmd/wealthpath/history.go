package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wealthpath/wealth-calculator/internal/output"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded projection runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	h, err := openHistory()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if h == nil {
		fmt.Fprintln(out, "  Run history is disabled. Enable it under [history] in the settings file.")
		return nil
	}
	defer h.Close()

	runs, err := h.Recent(cmd.Context(), flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "  No runs recorded yet. Try `wealthpath project`.")
		return nil
	}

	t := output.Table{
		Title:   "Recent Runs",
		Headers: []string{"Run", "When", "Scenario", "Account", "Initial", "Monthly", "Rate", "Years", "Final Value"},
	}
	for _, r := range runs {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Scenario,
			r.Input.AccountRegime.String(),
			output.FormatWholeCurrency(r.Input.InitialInvestment),
			output.FormatWholeCurrency(r.Input.MonthlyContribution),
			output.FormatPercentage(r.Input.AnnualInterestRatePercent),
			strconv.Itoa(r.Input.HorizonYears),
			output.FormatWholeCurrency(r.FinalValue),
		})
	}
	fmt.Fprint(out, output.RenderTable(t))
	return nil
}
