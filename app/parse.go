package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cscore/charharness/argparse"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Print the arguments parsed from the stdin line.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := readInput(cmd.InOrStdin())
		if err != nil {
			return err
		}
		parsed, err := argparse.Parse(line)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), parsed)
		return nil
	},
}
