// Package main provides end-to-end tests for the puzzlelint CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/puzzlelint/internal/cli"
	"github.com/leapstack-labs/puzzlelint/internal/cli/config"
	"github.com/leapstack-labs/puzzlelint/internal/cli/output"
	"github.com/leapstack-labs/puzzlelint/internal/cli/testutil"
	"github.com/leapstack-labs/puzzlelint/pkg/lint"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version command error = %v", err)
	}
	if !strings.Contains(stdout, "puzzlelint v") {
		t.Errorf("version output should contain 'puzzlelint v', got: %s", stdout)
	}
}

func TestCheck_ConfiguredProject(t *testing.T) {
	dir := testutil.WriteTxtar(t, testutil.PuzzleTree)
	yml := "puzzles_dir: puzzles\noutput: json\nlint:\n  disabled: [CH02]\n"
	if err := os.WriteFile(filepath.Join(dir, "puzzlelint.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(filepath.Join(dir, "puzzles", "two-sum"))

	stdout, _, err := run(t, "check")
	if err == nil || !strings.Contains(err.Error(), lint.ErrCheckFailed.Error()) {
		t.Fatalf("check error = %v, want %v", err, lint.ErrCheckFailed)
	}

	var out output.CheckOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if out.Root != filepath.Join(dir, "puzzles") {
		t.Errorf("root = %q, want the configured puzzles_dir", out.Root)
	}
	if out.Summary.Directories != 4 {
		t.Errorf("directories = %d, want 4", out.Summary.Directories)
	}
	for _, d := range out.Directories {
		for _, r := range d.Results {
			if r.RuleID == "CH02" {
				t.Errorf("disabled rule CH02 ran on %s", d.Name)
			}
		}
	}
}

func TestCheck_PassingTreeExitsCleanly(t *testing.T) {
	dir := testutil.WriteTxtar(t, testutil.PassingTree)
	t.Chdir(dir)

	stdout, _, err := run(t, "check", "puzzles", "-o", "markdown")
	if err != nil {
		t.Fatalf("check error = %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "All 1 puzzles are consistent") {
		t.Errorf("unexpected output:\n%s", stdout)
	}
}

func TestCheck_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := run(t, "check", "--depth", "0")
	if err == nil {
		t.Fatal("expected a validation error for depth 0")
	}
}

func TestRolesCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, _, err := run(t, "roles", "-o", "json")
	if err != nil {
		t.Fatalf("roles error = %v", err)
	}
	for _, name := range []string{"challenge.kt", "solutions.kt", "test.kt"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("roles output should list %s, got: %s", name, stdout)
		}
	}
}
