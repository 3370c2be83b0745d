package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cscore/charharness/argparse"
)

var (
	cfg Config

	configPath   string
	functionName string
	maxLineBytes int
	timeout      time.Duration
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "charharness",
	Short: "Run a f(string, character) function on one input line.",
	Long: `Read one line from stdin, split it into a string argument and a character
argument, call the function under test and print its integer result.

The string argument may be wrapped in double quotes to keep leading or
trailing spaces; "" inside the quotes denotes the empty string.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (defaults to $"+ConfigEnv+").")
	rootCmd.PersistentFlags().StringVarP(&functionName, "function", "f", "", "Function under test: a built-in name or exec:<program>.")
	rootCmd.PersistentFlags().IntVar(&maxLineBytes, "max-line-bytes", 0, "Maximum input line length in bytes, terminator included.")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Time limit for one run of an external program.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr.")

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(parseCmd)
}

// setup loads the config file and applies explicitly set flags on top of it.
func setup(cmd *cobra.Command) error {
	log.SetOutput(cmd.ErrOrStderr())
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	c, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("function") {
		c.Function = functionName
	}
	if flags.Changed("max-line-bytes") {
		c.MaxLineBytes = maxLineBytes
	}
	if flags.Changed("timeout") {
		c.Timeout = timeout
	}
	if err := c.validate(); err != nil {
		return err
	}

	cfg = c
	log.Debug("config loaded", "function", cfg.Function, "max_line_bytes", cfg.MaxLineBytes, "timeout", cfg.Timeout)
	return nil
}

func newFunctions() *Functions {
	return NewFunctions(NewPathFinder(), NewExecutor(cfg.Timeout))
}

// readInput reads the single harness input line.
func readInput(in io.Reader) (string, error) {
	line, err := argparse.ReadLine(in, cfg.MaxLineBytes)
	if errors.Is(err, io.EOF) {
		return "", errors.New("no input line")
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

func runOnce(ctx context.Context, in io.Reader, out io.Writer) error {
	line, err := readInput(in)
	if err != nil {
		return err
	}

	fn, err := newFunctions().Lookup(cfg.Function)
	if err != nil {
		return err
	}

	result, err := fn.Invoke(ctx, line)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, result)
	return err
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
