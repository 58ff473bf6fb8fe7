package lint

import (
	"errors"
	"time"

	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
)

// CheckResult is the verdict of one rule invocation.
type CheckResult struct {
	RuleID     string
	Dir        puzzle.Directory
	Role       puzzle.Role
	Path       string
	Severity   Severity
	Err        error // nil when the check passed
	Skipped    bool
	SkipReason string
}

// Passed reports whether the check ran and found nothing.
func (r CheckResult) Passed() bool {
	return !r.Skipped && r.Err == nil
}

// Failed reports whether the check ran and found a violation.
func (r CheckResult) Failed() bool {
	return !r.Skipped && r.Err != nil
}

// AtLeast reports whether a failed result is at least as severe as threshold.
func (r CheckResult) AtLeast(threshold Severity) bool {
	return r.Failed() && r.Severity <= threshold
}

// Messages returns one message per violation. Joined errors are split.
func (r CheckResult) Messages() []string {
	if r.Err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(r.Err, &joined) {
		errs := joined.Unwrap()
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return []string{r.Err.Error()}
}

// DirectoryReport collects every result for one puzzle directory.
type DirectoryReport struct {
	Dir     puzzle.Directory
	Results []CheckResult
}

// Passed is the logical AND of every executed check.
func (d DirectoryReport) Passed() bool {
	for _, r := range d.Results {
		if r.Failed() {
			return false
		}
	}
	return true
}

// Failures returns the failed results at or above threshold.
func (d DirectoryReport) Failures(threshold Severity) []CheckResult {
	var out []CheckResult
	for _, r := range d.Results {
		if r.AtLeast(threshold) {
			out = append(out, r)
		}
	}
	return out
}

// Report is the outcome of one analyzer run.
type Report struct {
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	Directories []DirectoryReport
}

// Summary aggregates result counts.
type Summary struct {
	Directories       int `json:"directories" yaml:"directories"`
	FailedDirectories int `json:"failed_directories" yaml:"failed_directories"`
	Checks            int `json:"checks" yaml:"checks"`
	Passed            int `json:"passed" yaml:"passed"`
	Failed            int `json:"failed" yaml:"failed"`
	Skipped           int `json:"skipped" yaml:"skipped"`
}

// Summary counts results, treating failures below threshold as passed.
func (r *Report) Summary(threshold Severity) Summary {
	s := Summary{Directories: len(r.Directories)}
	for _, d := range r.Directories {
		if len(d.Failures(threshold)) > 0 {
			s.FailedDirectories++
		}
		for _, res := range d.Results {
			s.Checks++
			switch {
			case res.Skipped:
				s.Skipped++
			case res.AtLeast(threshold):
				s.Failed++
			default:
				s.Passed++
			}
		}
	}
	return s
}

// Passed reports whether no failure at or above threshold remains.
func (r *Report) Passed(threshold Severity) bool {
	for _, d := range r.Directories {
		if len(d.Failures(threshold)) > 0 {
			return false
		}
	}
	return true
}

// Duration returns the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
