package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Dynamic token patterns that must not appear in configuration values.
// These indicate a variable the user expected some other tool to expand.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// logLevels maps accepted log_level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the configuration for correctness. Platform, OS and port
// values are not checked here: a flag may still override them, and the
// resolver reports them with parameter context.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if _, ok := logLevels[strings.ToLower(cfg.LogLevel)]; cfg.LogLevel != "" && !ok {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: "must be one of: debug, info, warn, error",
			Value:   cfg.LogLevel,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	if cfg.LogFormat != "" && !validLogFormats[strings.ToLower(cfg.LogFormat)] {
		errs = append(errs, ValidationError{
			Field:   "log_format",
			Message: "must be one of: text, json",
			Value:   cfg.LogFormat,
			Wrapped: ErrInvalidConfig,
		})
	}

	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// SlogLevel returns the slog level for LogLevel, defaulting to
// DefaultLogLevel.
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return logLevels[DefaultLogLevel]
}

// validateDynamicTokens checks all string fields for unexpanded dynamic tokens.
func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError
	errs = append(errs, checkStringField("platform", cfg.Platform)...)
	errs = append(errs, checkStringField("os", cfg.OS)...)
	errs = append(errs, checkStringField("port", cfg.Port)...)
	return errs
}

// checkStringField checks a single string field for dynamic token patterns.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Wrapped: ErrDynamicToken,
				},
			}
		}
	}
	return nil
}
