package output

import "time"

// CheckOutput is the machine-readable form of a check run.
type CheckOutput struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	Root        string            `json:"root" yaml:"root"`
	StartedAt   time.Time         `json:"started_at" yaml:"started_at"`
	DurationMS  int64             `json:"duration_ms" yaml:"duration_ms"`
	Threshold   string            `json:"severity_threshold" yaml:"severity_threshold"`
	Passed      bool              `json:"passed" yaml:"passed"`
	Summary     CheckSummary      `json:"summary" yaml:"summary"`
	Directories []DirectoryOutput `json:"directories" yaml:"directories"`
}

// CheckSummary aggregates result counts.
type CheckSummary struct {
	Directories       int `json:"directories" yaml:"directories"`
	FailedDirectories int `json:"failed_directories" yaml:"failed_directories"`
	Checks            int `json:"checks" yaml:"checks"`
	Passed            int `json:"passed" yaml:"passed"`
	Failed            int `json:"failed" yaml:"failed"`
	Skipped           int `json:"skipped" yaml:"skipped"`
}

// DirectoryOutput holds every result for one puzzle directory.
type DirectoryOutput struct {
	Path    string         `json:"path" yaml:"path"`
	Name    string         `json:"name" yaml:"name"`
	Passed  bool           `json:"passed" yaml:"passed"`
	Results []ResultOutput `json:"results" yaml:"results"`
}

// ResultOutput is one rule invocation.
type ResultOutput struct {
	RuleID     string   `json:"rule_id" yaml:"rule_id"`
	Role       string   `json:"role" yaml:"role"`
	File       string   `json:"file" yaml:"file"`
	Severity   string   `json:"severity" yaml:"severity"`
	Status     string   `json:"status" yaml:"status"` // passed, failed, skipped
	Messages   []string `json:"messages,omitempty" yaml:"messages,omitempty"`
	SkipReason string   `json:"skip_reason,omitempty" yaml:"skip_reason,omitempty"`
}

// Result statuses.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// RoleOutput describes one required file role.
type RoleOutput struct {
	Role string `json:"role" yaml:"role"`
	File string `json:"file" yaml:"file"`
}

// DiscoverOutput is the machine-readable form of the discover command.
type DiscoverOutput struct {
	Root    string          `json:"root" yaml:"root"`
	Puzzles []PuzzleOutput  `json:"puzzles" yaml:"puzzles"`
	Summary DiscoverSummary `json:"summary" yaml:"summary"`
}

// PuzzleOutput describes one discovered puzzle directory.
type PuzzleOutput struct {
	Name     string       `json:"name" yaml:"name"`
	Path     string       `json:"path" yaml:"path"`
	Complete bool         `json:"complete" yaml:"complete"`
	Files    []FileOutput `json:"files" yaml:"files"`
}

// FileOutput reports whether a required file is present.
type FileOutput struct {
	Role    string `json:"role" yaml:"role"`
	Path    string `json:"path" yaml:"path"`
	Present bool   `json:"present" yaml:"present"`
}

// DiscoverSummary counts discovered puzzles.
type DiscoverSummary struct {
	Puzzles    int `json:"puzzles" yaml:"puzzles"`
	Incomplete int `json:"incomplete" yaml:"incomplete"`
}
