package cli

import (
	"io"
	"strings"

	"github.com/sdejongh/wfam/internal/platform"
	"github.com/sdejongh/wfam/pkg/config"
	"github.com/sdejongh/wfam/pkg/logging"
	"github.com/sdejongh/wfam/pkg/models"
	"github.com/sdejongh/wfam/pkg/output"
)

// validateCheckFlags validates the check command flags
func validateCheckFlags() error {
	if checkFlags.Base == "" {
		return &models.ValidationError{Field: "base", Message: "base folder is required"}
	}
	if err := platform.ValidatePath(checkFlags.Base); err != nil {
		return &models.ValidationError{Field: "base", Message: err.Error()}
	}

	if checkFlags.Unsorted == "" {
		return &models.ValidationError{Field: "unsorted", Message: "unsorted folder is required"}
	}
	if err := platform.ValidatePath(checkFlags.Unsorted); err != nil {
		return &models.ValidationError{Field: "unsorted", Message: err.Error()}
	}

	if checkFlags.ListFormat != "" && !output.ValidListFormat(checkFlags.ListFormat) {
		return &models.ValidationError{Field: "format", Message: "must be 'text' or 'json'"}
	}

	if checkFlags.Output != "" && checkFlags.Output != "human" && checkFlags.Output != "json" {
		return &models.ValidationError{Field: "output", Message: "must be 'human' or 'json'"}
	}

	if checkFlags.NameCase != "" && !models.NameCase(checkFlags.NameCase).Valid() {
		return &models.ValidationError{Field: "name-case", Message: "must be 'auto', 'sensitive', or 'insensitive'"}
	}

	if globalFlags.Verbose && globalFlags.Quiet {
		return &models.ValidationError{Field: "quiet", Message: "cannot be combined with --verbose"}
	}

	if globalFlags.LogLevel != "" && !logging.ValidLevel(globalFlags.LogLevel) {
		return &models.ValidationError{Field: "log-level", Message: "must be 'trace', 'debug', 'info', 'warn', or 'error'"}
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(platform.ExpandEnv(globalFlags.ConfigFile))
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config, changed func(name string) bool) {
	// Extension filter; a list without dotted tokens disables filtering
	if changed("ext") {
		cfg.Check.Extensions = models.ParseExtensionFilter(checkFlags.Ext).Extensions()
	}

	// Name matching policy
	if checkFlags.NameCase != "" {
		cfg.Check.NameCase = models.NameCase(checkFlags.NameCase)
	}

	// List file format
	if checkFlags.ListFormat != "" {
		cfg.Check.ListFormat = checkFlags.ListFormat
	}

	// Report format
	if checkFlags.Output != "" {
		cfg.Output.Format = checkFlags.Output
	}

	if checkFlags.NoProgress {
		cfg.Output.Progress = false
	}

	if globalFlags.NoColor {
		cfg.Output.Color = false
	}

	// Logging
	if globalFlags.LogFile != "" {
		cfg.Logging.File = globalFlags.LogFile
	}
	if globalFlags.LogFormat != "" {
		cfg.Logging.Format = strings.ToLower(globalFlags.LogFormat)
	}
	if globalFlags.LogLevel != "" {
		cfg.Logging.Level = strings.ToLower(globalFlags.LogLevel)
	}

	// Verbose mode logs everything
	if globalFlags.Verbose {
		cfg.Logging.Level = "debug"
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
}

// createLogger builds the console logger and adds a file logger when a log file is configured
func createLogger(cfg *config.Config, console io.Writer) (logging.Logger, error) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if cfg.Output.Quiet {
		level = logging.ErrorLevel
	}

	consoleLogger := logging.NewConsoleLogger(console, level)
	if !cfg.Output.Color {
		consoleLogger.SetColor(false)
	}

	if cfg.Logging.File == "" {
		return consoleLogger, nil
	}

	fileLogger, err := logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       platform.ExpandEnv(cfg.Logging.File),
		Format:     logging.ParseFormat(cfg.Logging.Format),
		Level:      logging.ParseLevel(cfg.Logging.Level),
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, err
	}

	return logging.NewMultiLogger(consoleLogger, fileLogger), nil
}
