package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wealthpath/wealth-calculator/internal/config"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example plan file",
	Long:  "Write an example YAML plan with roth, traditional and taxable scenarios.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "wealthpath_plan.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !flagInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	parser := config.NewInputParser()
	if err := parser.SavePlan(parser.CreateExamplePlan(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Run `wealthpath compare --plan %s` to compare its scenarios.\n", path)
	return nil
}
