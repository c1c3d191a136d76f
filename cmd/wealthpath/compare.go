package main

import (
	"github.com/spf13/cobra"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

var (
	compareInputs inputFlags
	compareOutput outputFlags
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare taxable, traditional and roth accounts side by side",
	Long: "Project one set of inputs under all three account types, or every\n" +
		"scenario of a plan file, and rank them by final value.",
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareInputs.register(compareCmd)
	compareOutput.register(compareCmd)
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	named, startYear, err := compareInputs.resolve(cmd)
	if err != nil {
		return err
	}

	engine := newEngine()
	var results []domain.ScenarioResult
	if compareInputs.plan != "" {
		results, err = engine.RunScenarios(cmd.Context(), named)
	} else {
		results, err = engine.CompareRegimes(cmd.Context(), named[0].Input)
	}
	if err != nil {
		return err
	}
	return emitReport(cmd, &compareOutput, results, startYear)
}
