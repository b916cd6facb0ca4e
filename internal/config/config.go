// Package config provides configuration management for slink using
// Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// Configuration comes from a YAML file (.slink.yml by default),
// environment variables with the SLINK_ prefix, and flags bound by the
// CLI. It covers logging, output rendering, the demo seed sequences,
// and the script watcher.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/slink/internal/errs"
	"github.com/conneroisu/slink/internal/logging"
)

type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Demo   DemoConfig   `yaml:"demo" mapstructure:"demo"`
	Watch  WatchConfig  `yaml:"watch" mapstructure:"watch"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type OutputConfig struct {
	// Format selects how demo and script results are rendered:
	// "table" or "plain".
	Format string `yaml:"format" mapstructure:"format"`
}

// DemoConfig carries the literal sequences the demo command builds its
// lists from.
type DemoConfig struct {
	Values      []int         `yaml:"values" mapstructure:"values"`
	SortedOrder []int         `yaml:"sorted_order" mapstructure:"sorted_order"`
	CommonA     []int         `yaml:"common_a" mapstructure:"common_a"`
	CommonB     []int         `yaml:"common_b" mapstructure:"common_b"`
	Roster      []RosterEntry `yaml:"roster" mapstructure:"roster"`
}

type RosterEntry struct {
	Name string `yaml:"name" mapstructure:"name"`
	Age  int    `yaml:"age" mapstructure:"age"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// Load builds a Config from the current viper state, applies defaults,
// and validates the result.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errs.NewConfigError("unmarshaling configuration", err)
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
	if config.Output.Format == "" {
		config.Output.Format = "table"
	}
	if config.Watch.Debounce == 0 {
		config.Watch.Debounce = 300 * time.Millisecond
	}

	if len(config.Demo.Values) == 0 {
		config.Demo.Values = []int{10, 20, 30, 40, 50}
	}
	if len(config.Demo.SortedOrder) == 0 {
		config.Demo.SortedOrder = []int{30, 10, 50, 20, 40}
	}
	if len(config.Demo.CommonA) == 0 {
		config.Demo.CommonA = []int{1, 3, 4, 6, 7, 10, 12, 13, 14, 15, 16, 17}
	}
	if len(config.Demo.CommonB) == 0 {
		config.Demo.CommonB = []int{2, 4, 5, 6, 7, 8, 11, 13, 14, 16}
	}
	if len(config.Demo.Roster) == 0 {
		config.Demo.Roster = []RosterEntry{
			{Name: "AungBu", Age: 20},
			{Name: "Sar Oo", Age: 30},
			{Name: "AhBang", Age: 25},
			{Name: "AhLain", Age: 27},
			{Name: "Ahmedi", Age: 28},
		}
	}
}

// Validate checks configuration values for correctness.
func Validate(config *Config) error {
	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return errs.NewConfigError("log config", err)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return errs.NewConfigError(
			fmt.Sprintf("log format %q is not supported (text, json)", config.Log.Format), nil)
	}

	if config.Output.Format != "table" && config.Output.Format != "plain" {
		return errs.NewConfigError(
			fmt.Sprintf("output format %q is not supported (table, plain)", config.Output.Format), nil)
	}

	if config.Watch.Debounce < 0 {
		return errs.NewConfigError(
			fmt.Sprintf("watch debounce %s must not be negative", config.Watch.Debounce), nil)
	}

	for _, entry := range config.Demo.Roster {
		if entry.Name == "" {
			return errs.NewConfigError("roster entries must have a name", nil)
		}
	}

	return nil
}

// Logger builds the process logger described by the config.
func (c *Config) Logger() *logging.SlinkLogger {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		level = logging.LevelInfo
	}

	return logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: c.Log.Format,
	})
}
