package lint

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckResult(t *testing.T) {
	pass := CheckResult{RuleID: "CH01"}
	fail := CheckResult{RuleID: "CH01", Severity: SeverityWarning, Err: errors.New("boom")}
	skip := CheckResult{RuleID: "CH01", Skipped: true, SkipReason: skipReasonMissing}

	assert.True(t, pass.Passed())
	assert.False(t, pass.Failed())
	assert.True(t, fail.Failed())
	assert.False(t, skip.Passed())
	assert.False(t, skip.Failed())

	assert.True(t, fail.AtLeast(SeverityWarning))
	assert.True(t, fail.AtLeast(SeverityHint))
	assert.False(t, fail.AtLeast(SeverityError))

	assert.Nil(t, pass.Messages())
	assert.Equal(t, []string{"boom"}, fail.Messages())

	joined := CheckResult{Err: errors.Join(errors.New("a"), errors.New("b"))}
	assert.Equal(t, []string{"a", "b"}, joined.Messages())
}

func TestReport_Summary(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report := &Report{
		StartedAt:  start,
		FinishedAt: start.Add(2 * time.Second),
		Directories: []DirectoryReport{
			{Dir: "a", Results: []CheckResult{
				{RuleID: "FL01"},
				{RuleID: "CH01", Severity: SeverityError, Err: errors.New("x")},
			}},
			{Dir: "b", Results: []CheckResult{
				{RuleID: "FL01", Severity: SeverityInfo, Err: errors.New("y")},
				{RuleID: "SL01", Skipped: true},
			}},
			{Dir: "c", Results: []CheckResult{{RuleID: "FL01"}}},
		},
	}

	assert.Equal(t, Summary{
		Directories: 3, FailedDirectories: 1,
		Checks: 5, Passed: 3, Failed: 1, Skipped: 1,
	}, report.Summary(SeverityWarning))

	assert.Equal(t, Summary{
		Directories: 3, FailedDirectories: 2,
		Checks: 5, Passed: 2, Failed: 2, Skipped: 1,
	}, report.Summary(SeverityHint))

	assert.False(t, report.Passed(SeverityWarning))
	assert.False(t, report.Directories[1].Passed())
	assert.True(t, report.Directories[2].Passed())
	assert.Len(t, report.Directories[0].Failures(SeverityError), 1)
	assert.Equal(t, 2*time.Second, report.Duration())
}
