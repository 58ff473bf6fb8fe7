package files

import (
	"io/fs"
	"os"

	"github.com/leapstack-labs/puzzlelint/pkg/lint"
	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
)

func init() {
	lint.Register(RequiredFile)
}

// RequiredFile fails when a required file of a puzzle directory is absent.
var RequiredFile = lint.RuleDef{
	ID:          "FL01",
	Name:        "files.required_file",
	Group:       "files",
	Description: "Every puzzle directory contains its challenge, solutions and test files.",
	Severity:    lint.SeverityError,
	Target:      lint.TargetPath,
	Roles:       puzzle.Roles(),
	CheckPath:   checkRequiredFile,

	Rationale: `Tooling builds and runs each puzzle from these three files.
A missing file means the puzzle cannot be compiled or verified.`,
	BadExample: `two-sum/
  challenge.kt
  solutions.kt`,
	GoodExample: `two-sum/
  challenge.kt
  solutions.kt
  test.kt`,
	Fix: "Add the missing file, or move the directory out of the puzzles tree.",
}

func checkRequiredFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		// Permission errors count as missing: the file is unusable either way.
		return &lint.MissingFileError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &lint.MissingFileError{Path: path, Err: fs.ErrInvalid}
	}
	return nil
}
