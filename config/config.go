// Package config loads calcpad settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Theme holds lipgloss colour strings ("#RRGGBB" or ANSI numbers).
type Theme struct {
	Display          string `yaml:"display"`
	Status           string `yaml:"status"`
	Digit            string `yaml:"digit"`
	Operator         string `yaml:"operator"`
	Function         string `yaml:"function"`
	Equals           string `yaml:"equals"`
	InverseActive    string `yaml:"inverse_active"`
	InverseIdle      string `yaml:"inverse_idle"`
	ButtonForeground string `yaml:"button_foreground"`
}

type Config struct {
	// Precision is the number of decimals results are rounded to.
	Precision int `yaml:"precision"`
	// CollapseDivideByZero shows "Error" instead of the divide-by-zero
	// message.
	CollapseDivideByZero bool `yaml:"collapse_divide_by_zero"`

	HistoryLimit int `yaml:"history_limit"`

	// StateFile holds the saved expression. Restore controls whether it is
	// read on start; it is always written on exit.
	StateFile string `yaml:"state_file"`
	Restore   bool   `yaml:"restore"`

	// LogFile is empty to disable logging.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`

	Theme Theme `yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Precision:    6,
		HistoryLimit: 1000,
		StateFile:    filepath.Join(defaultStateDir(), "state.json"),
		Restore:      true,
		LogLevel:     "info",
		Theme: Theme{
			Display:          "#3B3936",
			Status:           "#BD2A2E",
			Digit:            "#B2BEBF",
			Operator:         "#889C9B",
			Function:         "#486966",
			Equals:           "#BD2A2E",
			InverseActive:    "#BD2A2E",
			InverseIdle:      "#486966",
			ButtonForeground: "#F5F5F5",
		},
	}
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "calcpad")
	}
	return ".calcpad"
}

func defaultStateDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "calcpad")
	}
	return ".calcpad"
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string { return filepath.Join(defaultConfigDir(), "config.yaml") }

// Load reads path over the defaults and validates the result. A missing file
// yields Default().
func Load(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads path over the defaults without validating, for callers that
// apply overrides first. A missing file yields Default().
func Parse(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Save writes c to path as YAML atomically, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	if c.Precision < 1 || c.Precision > 15 {
		return fmt.Errorf("%w: precision %d out of range [1,15]", ErrInvalid, c.Precision)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// SlogLevel maps LogLevel onto slog; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
