package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML file named by TM_CONFIG, if any
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	return l.load(os.Getenv("TM_CONFIG"))
}

// LoadWithOverrides loads configuration and applies command line overrides.
// overrides.ConfigFile, when set, replaces TM_CONFIG.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	path := os.Getenv("TM_CONFIG")
	if overrides != nil && overrides.ConfigFile != nil {
		path = *overrides.ConfigFile
	}

	config, err := l.load(path)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) load(path string) (*Config, error) {
	if path != "" {
		if err := l.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFile merges a YAML file into the current configuration.
// Keys missing from the file keep their current values.
func (l *Loader) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	file.applyTo(l.config)
	return nil
}

// fileConfig mirrors Config with pointer fields so absent keys are distinguishable
type fileConfig struct {
	Store struct {
		Backend   *string `yaml:"backend"`
		SQLiteDSN *string `yaml:"sqlite_dsn"`
	} `yaml:"store"`
	Validation struct {
		TaskNameMaxLength *int `yaml:"task_name_max_length"`
	} `yaml:"validation"`
	Display struct {
		Emoji          *string `yaml:"emoji"`
		SeparatorWidth *int    `yaml:"separator_width"`
	} `yaml:"display"`
	Application struct {
		Timeout *string `yaml:"timeout"`
		Debug   *bool   `yaml:"debug"`
	} `yaml:"application"`
}

func (f *fileConfig) applyTo(config *Config) {
	if f.Store.Backend != nil {
		config.Store.Backend = *f.Store.Backend
	}
	if f.Store.SQLiteDSN != nil {
		config.Store.SQLiteDSN = *f.Store.SQLiteDSN
	}
	if f.Validation.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *f.Validation.TaskNameMaxLength
	}
	if f.Display.Emoji != nil {
		config.Display.Emoji = *f.Display.Emoji
	}
	if f.Display.SeparatorWidth != nil {
		config.Display.SeparatorWidth = *f.Display.SeparatorWidth
	}
	if f.Application.Timeout != nil {
		config.Application.Timeout = ParseDurationWithFallback(*f.Application.Timeout, config.Application.Timeout)
	}
	if f.Application.Debug != nil {
		config.Application.Debug = *f.Application.Debug
	}
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	ConfigFile *string

	// Store overrides
	StoreBackend *string
	SQLiteDSN    *string

	// Validation overrides
	TaskNameMaxLength *int

	// Display overrides
	Emoji          *string
	SeparatorWidth *int

	// Application overrides
	Timeout *time.Duration
	Debug   *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StoreBackend != nil {
		config.Store.Backend = *overrides.StoreBackend
	}
	if overrides.SQLiteDSN != nil {
		config.Store.SQLiteDSN = *overrides.SQLiteDSN
	}

	if overrides.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}

	if overrides.Emoji != nil {
		config.Display.Emoji = *overrides.Emoji
	}
	if overrides.SeparatorWidth != nil {
		config.Display.SeparatorWidth = *overrides.SeparatorWidth
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Debug != nil {
		config.Application.Debug = *overrides.Debug
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
