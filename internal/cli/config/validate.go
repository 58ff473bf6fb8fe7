package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/leapstack-labs/puzzlelint/pkg/lint"
)

// Validate checks field ranges and enumerations using struct tags.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s, got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// SlogLevel maps LogLevel to a slog level. Verbose forces debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LintSettings converts the lint section to an analyzer configuration.
// Severity values were checked by Validate; unknown ones are ignored here.
func (c *Config) LintSettings() *lint.Config {
	cfg := lint.NewConfig()
	cfg.Concurrency = c.Concurrency
	for _, id := range c.Lint.Disabled {
		cfg.Disable(id)
	}
	for id, sev := range c.Lint.Severity {
		if s, ok := lint.ParseSeverity(sev); ok {
			cfg.SetSeverity(id, s)
		}
	}
	return cfg
}
