package main

import (
	"github.com/spf13/cobra"
)

var (
	projectInputs inputFlags
	projectOutput outputFlags
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a savings plan year by year",
	Long: "Project a savings plan year by year. Form values come from flags, then\n" +
		"the last recorded run with --resume, then the settings file. With --plan,\n" +
		"every scenario in the plan (or the one named by --scenario) is projected.",
	Args: cobra.NoArgs,
	RunE: runProject,
}

func init() {
	projectInputs.register(projectCmd)
	projectCmd.Flags().BoolVar(&projectInputs.resume, "resume", false, "Start from the inputs of the last recorded run")
	projectOutput.register(projectCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	named, startYear, err := projectInputs.resolve(cmd)
	if err != nil {
		return err
	}

	results, err := newEngine().RunScenarios(cmd.Context(), named)
	if err != nil {
		return err
	}
	return emitReport(cmd, &projectOutput, results, startYear)
}
