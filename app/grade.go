package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <suite.yaml>",
	Short: "Grade a function against a YAML suite of test cases.",
	Long: `Grade a function against a YAML suite of test cases and print a report.

The --function flag overrides the suite's function; a suite without one
uses the configured function. Exits non-zero when any case does not pass.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := LoadSuite(args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("function") || suite.Function == "" {
			suite.Function = cfg.Function
		}

		report, err := NewGrader(newFunctions()).Grade(cmd.Context(), suite)
		if err != nil {
			return err
		}
		report.Render(cmd.OutOrStdout())

		if report.Passed < report.Total() {
			return fmt.Errorf("%d of %d cases did not pass", report.Total()-report.Passed, report.Total())
		}
		return nil
	},
}
