package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var errQuit = errors.New("quit")

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate input lines interactively.",
	Long:  "Read input lines interactively and print the result of the function under test for each.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

func runREPL() error {
	functions := newFunctions()
	session, err := NewSession(functions, cfg.Function)
	if err != nil {
		return err
	}

	completer := NewCompleter(functions.Names())
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		AutoComplete: completer,
		Listener:     completer,
		HistoryFile:  cfg.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	completer.Out = rl.Stdout()
	completer.rl = rl
	session.out = rl.Stdout()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // EOF or Ctrl+D
			return nil
		}

		if err := session.EvalInterruptible(line); errors.Is(err, errQuit) {
			return nil
		}
	}
}

// Session evaluates REPL lines against the currently selected function.
type Session struct {
	functions  *Functions
	current    Invoker
	transcript *Transcript
	out        io.Writer
}

func NewSession(functions *Functions, name string) (*Session, error) {
	fn, err := functions.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &Session{
		functions:  functions,
		current:    fn,
		transcript: &Transcript{},
		out:        io.Discard,
	}, nil
}

// EvalInterruptible evaluates line under its own interrupt handler, so a
// Ctrl-C while a program runs cancels only that evaluation.
func (s *Session) EvalInterruptible(line string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return s.Eval(ctx, line)
}

// Eval handles a meta command or evaluates line as harness input. Only
// errQuit is returned; evaluation failures are printed.
func (s *Session) Eval(ctx context.Context, line string) error {
	if strings.HasPrefix(line, ":") {
		words := splitWords(line)
		if handled, err := s.meta(words); handled {
			return err
		}
	}

	result, err := s.current.Invoke(ctx, line)
	s.transcript.Record(Entry{Function: s.current.Name(), Line: line, Result: result, Err: err})
	if err != nil {
		log.Debug("evaluation failed", "line", line, "err", err)
		fmt.Fprintf(s.out, "error: %v\n", err)
		return nil
	}
	fmt.Fprintln(s.out, result)
	return nil
}

// meta runs a REPL meta command. Words that are not a meta command are
// reported as unhandled and evaluated as input.
func (s *Session) meta(words []string) (bool, error) {
	if len(words) == 0 {
		return false, nil
	}

	switch words[0] {
	case ":quit":
		return true, errQuit

	case ":functions":
		for _, name := range s.functions.Names() {
			marker := " "
			if name == s.current.Name() {
				marker = "*"
			}
			fmt.Fprintf(s.out, "%s %s\n", marker, name)
		}
		return true, nil

	case ":use":
		if len(words) != 2 {
			fmt.Fprintln(s.out, "usage: :use <function>")
			return true, nil
		}
		fn, err := s.functions.Lookup(words[1])
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return true, nil
		}
		s.current = fn
		return true, nil

	case ":history":
		n := 0
		if len(words) > 1 {
			cnt, err := strconv.Atoi(words[1])
			if err != nil {
				fmt.Fprintf(s.out, "history: %s: numeric argument required\n", words[1])
				return true, nil
			}
			n = cnt
		}
		s.transcript.Write(s.out, n)
		return true, nil
	}

	return false, nil
}
