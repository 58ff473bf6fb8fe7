package lint

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
	"github.com/leapstack-labs/puzzlelint/pkg/source"
)

// =============================================================================
// Severity
// =============================================================================

// Severity indicates the importance of a failed check.
type Severity int

// Severity levels, most severe first.
const (
	// SeverityError indicates a violation that fails the run.
	SeverityError Severity = iota
	// SeverityWarning indicates a violation that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns SeverityWarning and false if s is not a known level.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	sev, ok := ParseSeverity(string(b))
	if !ok {
		return fmt.Errorf("unknown severity %q", string(b))
	}
	*s = sev
	return nil
}

// =============================================================================
// Rule Definitions
// =============================================================================

// TargetKind says what a rule's check function receives.
type TargetKind int

const (
	// TargetPath rules receive the path of a required file.
	TargetPath TargetKind = iota
	// TargetFile rules receive the parsed declaration tree of a required file.
	TargetFile
)

// String returns "path" or "file".
func (k TargetKind) String() string {
	if k == TargetFile {
		return "file"
	}
	return "path"
}

// PathCheck validates a file-system path. A nil error means pass.
type PathCheck func(path string) error

// FileCheck validates a parsed source file. A nil error means pass.
type FileCheck func(f *source.File) error

// RuleDef is a data-driven rule definition.
// Rules are stateless: everything they need arrives through the check function.
type RuleDef struct {
	ID          string        // Unique identifier, e.g. "SL01"
	Name        string        // Human-readable name, e.g. "solution-object"
	Group       string        // Category, e.g. "files", "solution", "challenge"
	Description string        // One-line description
	Severity    Severity      // Default severity
	Target      TargetKind    // What the check receives
	Roles       []puzzle.Role // Required files the rule applies to
	CheckPath   PathCheck     // Set when Target == TargetPath
	CheckFile   FileCheck     // Set when Target == TargetFile

	// Documentation
	Rationale   string
	BadExample  string
	GoodExample string
	Fix         string
}

// RuleInfo provides metadata about a rule for documentation and tooling.
type RuleInfo struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Group           string   `json:"group" yaml:"group"`
	Description     string   `json:"description" yaml:"description"`
	DefaultSeverity Severity `json:"default_severity" yaml:"default_severity"`
	Target          string   `json:"target" yaml:"target"`
	Files           []string `json:"files" yaml:"files"`
	Rationale       string   `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	BadExample      string   `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	GoodExample     string   `json:"good_example,omitempty" yaml:"good_example,omitempty"`
	Fix             string   `json:"fix,omitempty" yaml:"fix,omitempty"`
}

// Info extracts the rule's metadata.
func (r RuleDef) Info() RuleInfo {
	files := make([]string, 0, len(r.Roles))
	for _, role := range r.Roles {
		files = append(files, role.FileName())
	}
	return RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		Target:          r.Target.String(),
		Files:           files,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

// validate reports definition mistakes at registration time.
func (r RuleDef) validate() error {
	switch {
	case r.ID == "":
		return fmt.Errorf("rule has no ID")
	case len(r.Roles) == 0:
		return fmt.Errorf("rule %s targets no required file", r.ID)
	case r.Target == TargetPath && r.CheckPath == nil:
		return fmt.Errorf("path rule %s has no CheckPath", r.ID)
	case r.Target == TargetFile && r.CheckFile == nil:
		return fmt.Errorf("file rule %s has no CheckFile", r.ID)
	}
	return nil
}
