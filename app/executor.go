package main

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// waitDelay bounds how long Run waits for stdout and stderr to close once the
// program has exited or been killed; a leftover grandchild may still hold them.
const waitDelay = 500 * time.Millisecond

// Executor runs external student programs, one input line per run.
type Executor struct {
	timeout time.Duration
}

// NewExecutor creates an Executor. A zero timeout disables the per-run limit.
func NewExecutor(timeout time.Duration) *Executor {
	return &Executor{timeout: timeout}
}

// Run starts the program at path with input on stdin and returns its stdout
// without the trailing newline.
func (e *Executor) Run(ctx context.Context, path string, input string) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Stdin = strings.NewReader(input)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	log.Debug("executed", "path", path, "elapsed", time.Since(started), "err", err)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%s: %w", path, ctxErr)
		}
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%s: %v: %s", path, err, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return strings.TrimSuffix(stdout.String(), "\n"), nil
}
