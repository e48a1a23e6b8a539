package config

import (
	"github.com/sdejongh/wfam/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Check   CheckConfig   `yaml:"check"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CheckConfig holds settings for the base/unsorted comparison
type CheckConfig struct {
	Extensions []string        `yaml:"extensions"`  // e.g. [".jpg", ".jpeg"]; empty = all files
	NameCase   models.NameCase `yaml:"name_case"`   // "auto", "sensitive" or "insensitive"
	ListFormat string          `yaml:"list_format"` // "text" or "json"
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bar
	Color    bool   `yaml:"color"`    // Colorize console output on terminals
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format     string `yaml:"format"`      // "json" or "text"
	Level      string `yaml:"level"`       // "trace", "debug", "info", "warn", "error"
	File       string `yaml:"file"`        // Log file path (empty = console only)
	MaxSize    int64  `yaml:"max_size"`    // Rotation size in bytes (0 = never)
	MaxBackups int    `yaml:"max_backups"` // Rotated files to keep
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Check: CheckConfig{
			Extensions: []string{},
			NameCase:   models.NameCaseAuto,
			ListFormat: "text",
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Color:    true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format:     "text",
			Level:      "info",
			File:       "",
			MaxSize:    10 * 1024 * 1024, // 10 MB
			MaxBackups: 5,
		},
	}
}

// Validate checks if the configuration is valid.
// Extensions that do not start with a dot are dropped, like on the command line.
func (c *Config) Validate() error {
	c.Check.Extensions = models.NewExtensionFilter(c.Check.Extensions).Extensions()

	if !c.Check.NameCase.Valid() {
		return &models.ValidationError{
			Field:   "check.name_case",
			Message: "must be 'auto', 'sensitive', or 'insensitive'",
		}
	}

	validListFormats := map[string]bool{"text": true, "json": true}
	if !validListFormats[c.Check.ListFormat] {
		return &models.ValidationError{
			Field:   "check.list_format",
			Message: "must be 'text' or 'json'",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'trace', 'debug', 'info', 'warn', or 'error'",
		}
	}

	if c.Logging.MaxSize < 0 {
		return &models.ValidationError{
			Field:   "logging.max_size",
			Message: "must not be negative",
		}
	}

	if c.Logging.MaxBackups < 0 {
		return &models.ValidationError{
			Field:   "logging.max_backups",
			Message: "must not be negative",
		}
	}

	return nil
}
