package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(ConfigEnv, "")

	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, BootstrapConfig(), c)
	assert.Equal(t, 1000, c.MaxLineBytes)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeFile(t, "config.yaml", `
function: exec:student
timeout: 250ms
history_file: /tmp/charharness_history
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "exec:student", c.Function)
	assert.Equal(t, 250*time.Millisecond, c.Timeout)
	assert.Equal(t, "/tmp/charharness_history", c.HistoryFile)
	// unset keys keep their defaults
	assert.Equal(t, 1000, c.MaxLineBytes)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(ConfigEnv, writeFile(t, "env.yaml", "function: indexOf\n"))

	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "indexOf", c.Function)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = LoadConfig(writeFile(t, "bad.yaml", "function: [unterminated\n"))
	assert.ErrorContains(t, err, "failed to unmarshal config file")

	_, err = LoadConfig(writeFile(t, "zero.yaml", "max_line_bytes: 0\n"))
	assert.ErrorContains(t, err, "max_line_bytes must be positive")

	_, err = LoadConfig(writeFile(t, "empty_fn.yaml", "function: \"\"\n"))
	assert.ErrorContains(t, err, "function must not be empty")
}
