package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cscore/charharness/argparse"
)

// ConfigEnv names the environment variable consulted when no --config flag is given.
const ConfigEnv = "CHARHARNESS_CONFIG"

// Config holds the harness settings.
type Config struct {
	Function     string        `yaml:"function"`
	MaxLineBytes int           `yaml:"max_line_bytes"`
	Timeout      time.Duration `yaml:"timeout"`
	HistoryFile  string        `yaml:"history_file"`
}

func BootstrapConfig() Config {
	return Config{
		Function:     "countCharacter",
		MaxLineBytes: argparse.DefaultMaxLineBytes,
		Timeout:      5 * time.Second,
	}
}

// LoadConfig overlays the YAML file at path on top of the bootstrap defaults.
// An empty path falls back to $CHARHARNESS_CONFIG, and then to defaults only.
func LoadConfig(path string) (c Config, err error) {
	c = BootstrapConfig()
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return c, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config file: %w", err)
		return
	}

	err = yaml.Unmarshal(content, &c)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal config file: %w", err)
		return
	}

	err = c.validate()
	return
}

func (c Config) validate() error {
	if c.Function == "" {
		return errors.New("config: function must not be empty")
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("config: max_line_bytes must be positive, got %d", c.MaxLineBytes)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
