package config

import (
	"log/slog"

	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/normalization"
)

var (
	logLevels = normalization.NewEnumNormalizer("logging level", map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}, slog.LevelInfo)
	logFormats = normalization.NewEnumNormalizer("logging format", map[string]string{
		"text": "text",
		"json": "json",
	}, "text")
)

// SlogLevel returns the slog level for the configured name, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	return logLevels.Normalize(l.Level)
}

// Validate checks a defaulted configuration and normalizes the logging format.
func Validate(cfg *Config) error {
	if len(cfg.Projects) == 0 {
		return errors.ValidationError("at least one project must be configured").Build()
	}

	names := make(map[string]bool, len(cfg.Projects))
	for _, p := range cfg.Projects {
		if p.Name == "" {
			return errors.ValidationError("project name cannot be empty").Build()
		}
		if names[p.Name] {
			return errors.ValidationError("duplicate project name").WithContext("project", p.Name).Build()
		}
		names[p.Name] = true
		if p.Path == "" {
			return errors.ValidationError("project path cannot be empty").WithContext("project", p.Name).Build()
		}
	}

	if !names[cfg.Default] {
		return errors.ValidationError("default project is not configured").WithContext("project", cfg.Default).Build()
	}
	if _, err := logLevels.NormalizeWithValidation(cfg.Logging.Level); err != nil {
		return errors.ValidationError(err.Error()).
			WithContext("valid", logLevels.ValidValues()).
			Build()
	}
	format, err := logFormats.NormalizeWithValidation(cfg.Logging.Format)
	if err != nil {
		return errors.ValidationError(err.Error()).
			WithContext("valid", logFormats.ValidValues()).
			Build()
	}
	cfg.Logging.Format = format
	return nil
}
