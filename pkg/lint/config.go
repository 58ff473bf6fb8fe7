package lint

import "strings"

// Config controls which rules run, their severity and how many checks may
// run at once.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// Concurrency bounds parallel checks; zero or less means GOMAXPROCS.
	Concurrency int
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[normalizeID(ruleID)]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[normalizeID(ruleID)]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[normalizeID(ruleID)] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[normalizeID(ruleID)] = severity
	return c
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
