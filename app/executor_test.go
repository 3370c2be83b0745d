package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script in a temp directory.
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh available")
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestExecutorRun(t *testing.T) {
	echo := writeScript(t, "echo_line", `read line; echo "got:$line"`)

	out, err := NewExecutor(time.Second).Run(context.Background(), echo, "Hello l\n")
	require.NoError(t, err)
	assert.Equal(t, "got:Hello l", out)
}

func TestExecutorRunFailure(t *testing.T) {
	failing := writeScript(t, "failing", `echo "Error: Invalid input format" >&2; exit 1`)

	_, err := NewExecutor(time.Second).Run(context.Background(), failing, "x\n")
	require.Error(t, err)
	assert.ErrorContains(t, err, "Error: Invalid input format")
}

func TestExecutorRunTimeout(t *testing.T) {
	slow := writeScript(t, "slow", `exec sleep 5`)

	started := time.Now()
	_, err := NewExecutor(50*time.Millisecond).Run(context.Background(), slow, "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), 4*time.Second)
}

func TestExecutorRunTimeoutWithGrandchild(t *testing.T) {
	// sh forks sleep instead of exec'ing it, so sleep keeps stdout open after sh is killed
	wrapper := writeScript(t, "wrapper", "sleep 3; echo 1")

	started := time.Now()
	_, err := NewExecutor(50*time.Millisecond).Run(context.Background(), wrapper, "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), 2*time.Second)
}

func TestPathFinder(t *testing.T) {
	script := writeScript(t, "student", "exit 0")
	dir := filepath.Dir(script)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not executable"), 0644))

	pf := NewPathFinderFrom([]string{filepath.Join(dir, "missing"), dir})
	assert.Equal(t, script, pf.FindExecutable("student"))
	assert.Equal(t, script, pf.FindExecutable(script))
	assert.Empty(t, pf.FindExecutable("notes.txt"))
	assert.Empty(t, pf.FindExecutable("absent"))
	assert.Empty(t, pf.FindExecutable(""))
	assert.Empty(t, pf.FindExecutable(filepath.Join(dir, "notes.txt")))
}
