package config

import (
	"os"
	"strconv"
	"time"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Emoji modes for console output
const (
	EmojiAuto   = "auto"
	EmojiAlways = "always"
	EmojiNever  = "never"
)

// Config holds all configuration options for the task manager
type Config struct {
	Store       StoreConfig       `yaml:"store"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// StoreConfig selects and configures the task store
type StoreConfig struct {
	Backend   string `yaml:"backend" env:"TM_STORE_BACKEND"`
	SQLiteDSN string `yaml:"sqlite_dsn" env:"TM_SQLITE_DSN"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	// TaskNameMaxLength of zero means names may be any length
	TaskNameMaxLength int `yaml:"task_name_max_length" env:"TM_VALIDATION_TASK_NAME_MAX"`
}

// DisplayConfig holds console formatting configuration
type DisplayConfig struct {
	Emoji          string `yaml:"emoji" env:"TM_DISPLAY_EMOJI"`
	SeparatorWidth int    `yaml:"separator_width" env:"TM_DISPLAY_SEPARATOR_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TM_APP_TIMEOUT"`
	Debug   bool          `yaml:"debug" env:"TM_DEBUG"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   BackendMemory,
			SQLiteDSN: ":memory:",
		},
		Validation: ValidationConfig{
			TaskNameMaxLength: 0,
		},
		Display: DisplayConfig{
			Emoji:          EmojiAuto,
			SeparatorWidth: 40,
		},
		Application: ApplicationConfig{
			Timeout: 10 * time.Second,
			Debug:   false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that fail to parse are reported as ConfigError.
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("TM_STORE_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}
	if dsn := os.Getenv("TM_SQLITE_DSN"); dsn != "" {
		c.Store.SQLiteDSN = dsn
	}

	if maxLen := os.Getenv("TM_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		n, err := strconv.Atoi(maxLen)
		if err != nil {
			return &ConfigError{Field: "validation.task_name_max_length", Message: "TM_VALIDATION_TASK_NAME_MAX must be an integer"}
		}
		c.Validation.TaskNameMaxLength = n
	}

	if emoji := os.Getenv("TM_DISPLAY_EMOJI"); emoji != "" {
		c.Display.Emoji = emoji
	}
	if width := os.Getenv("TM_DISPLAY_SEPARATOR_WIDTH"); width != "" {
		w, err := strconv.Atoi(width)
		if err != nil {
			return &ConfigError{Field: "display.separator_width", Message: "TM_DISPLAY_SEPARATOR_WIDTH must be an integer"}
		}
		c.Display.SeparatorWidth = w
	}

	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return &ConfigError{Field: "application.timeout", Message: "TM_APP_TIMEOUT must be a duration such as 10s"}
		}
		c.Application.Timeout = d
	}
	if debug := os.Getenv("TM_DEBUG"); debug != "" {
		c.Application.Debug = ParseBoolWithFallback(debug, true)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Store.SQLiteDSN == "" {
			return &ConfigError{Field: "store.sqlite_dsn", Message: "sqlite DSN cannot be empty"}
		}
	default:
		return &ConfigError{Field: "store.backend", Message: "store backend must be one of: memory, sqlite"}
	}

	if c.Validation.TaskNameMaxLength < 0 {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length cannot be negative"}
	}

	switch c.Display.Emoji {
	case EmojiAuto, EmojiAlways, EmojiNever:
	default:
		return &ConfigError{Field: "display.emoji", Message: "emoji mode must be one of: auto, always, never"}
	}
	if c.Display.SeparatorWidth < 10 {
		return &ConfigError{Field: "display.separator_width", Message: "separator width must be at least 10"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
