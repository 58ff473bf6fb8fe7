package lint

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/leapstack-labs/puzzlelint/pkg/source"
)

// ErrCheckFailed is returned by callers that turn a failing report into a
// process exit status.
var ErrCheckFailed = errors.New("consistency checks failed")

// MissingFileError reports that a required file does not exist.
type MissingFileError struct {
	Path string
	Err  error // underlying stat error, if any
}

func (e *MissingFileError) Error() string {
	if errors.Is(e.Err, fs.ErrInvalid) {
		return fmt.Sprintf("required file %s is not a regular file", e.Path)
	}
	return fmt.Sprintf("required file %s does not exist", e.Path)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// NoSolutionObjectError reports a solution file without top-level objects.
type NoSolutionObjectError struct {
	Path string
}

func (e *NoSolutionObjectError) Error() string {
	return fmt.Sprintf("%s declares no top-level object", e.Path)
}

// BadSolutionNameError reports a solution object whose name lacks the
// required prefix.
type BadSolutionNameError struct {
	Path   string
	Name   string // empty when the object has no name
	Prefix string
	Pos    source.Position
}

func (e *BadSolutionNameError) Error() string {
	name := source.Declaration{Name: e.Name}.DisplayName()
	return fmt.Sprintf("%s:%s: object %q does not start with %q", e.Path, e.Pos, name, e.Prefix)
}

// WrongFunctionCountError reports a challenge file whose top-level function
// count differs from the expected count.
type WrongFunctionCountError struct {
	Path     string
	Found    int
	Expected int
}

func (e *WrongFunctionCountError) Error() string {
	return fmt.Sprintf("%s has %d top-level functions, expected %d", e.Path, e.Found, e.Expected)
}

// MissingTestClassError reports a challenge file that does not declare exactly
// one top-level class with the required name.
type MissingTestClassError struct {
	Path  string
	Name  string
	Found int
}

func (e *MissingTestClassError) Error() string {
	return fmt.Sprintf("%s has %d top-level classes named %q, expected exactly 1", e.Path, e.Found, e.Name)
}

// ParseError reports a file the parser could not turn into a declaration tree.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
