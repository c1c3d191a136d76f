package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wealthpath/wealth-calculator/internal/calculation"
	"github.com/wealthpath/wealth-calculator/internal/domain"
	"github.com/wealthpath/wealth-calculator/internal/output"
	"github.com/wealthpath/wealth-calculator/internal/store"
)

// outputFlags control where a report goes and whether the run is recorded.
type outputFlags struct {
	format    string
	dir       string
	noHistory bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Report format: console, console-lite, csv, detailed-csv, json, html or all (default from settings)")
	cmd.Flags().StringVarP(&o.dir, "output-dir", "o", "", "Directory for file reports (default from settings, else current directory)")
	cmd.Flags().BoolVar(&o.noHistory, "no-history", false, "Do not record this run")
}

// emitReport renders the results and records them in the run history.
func emitReport(cmd *cobra.Command, o *outputFlags, results []domain.ScenarioResult, startYear int) error {
	inputs := make([]domain.ProjectionInput, len(results))
	for i, r := range results {
		inputs[i] = r.Input
	}
	report := calculation.BuildReport(results, startYear, output.GenerateAssumptions(inputs))

	format := settings.Output.Format
	if cmd.Flags().Changed("format") {
		format = o.format
	}

	if output.IsTerminalFormat(format) {
		data, err := output.Render(report, format)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	} else {
		files, err := output.GenerateReport(report, format, firstNonEmpty(o.dir, settings.Output.Dir, "."))
		for _, name := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
		}
		if err != nil {
			return err
		}
	}

	if o.noHistory {
		return nil
	}
	return recordRuns(cmd, results)
}

func recordRuns(cmd *cobra.Command, results []domain.ScenarioResult) error {
	h, err := openHistory()
	if err != nil || h == nil {
		return err
	}
	defer h.Close()

	runs := make([]store.Run, len(results))
	for i, r := range results {
		runs[i] = store.RunFromResult(r)
	}
	if err := h.Record(cmd.Context(), runs...); err != nil {
		return fmt.Errorf("recording history: %w", err)
	}
	logger.Debugf("recorded %d run(s) in %s", len(runs), settings.HistoryPath(dataDir))
	return nil
}
