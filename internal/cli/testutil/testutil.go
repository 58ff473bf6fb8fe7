// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/leapstack-labs/puzzlelint/internal/cli/output"
)

// PuzzleTree is a txtar archive of a small puzzles directory: two-sum is
// consistent, the others each break one convention.
const PuzzleTree = `A puzzles tree with one passing and three failing puzzles.
-- puzzles/two-sum/challenge.kt --
fun twoSum(nums: IntArray, target: Int): IntArray = intArrayOf()

class Test
-- puzzles/two-sum/solutions.kt --
object SolutionBruteForce
object SolutionHashMap
-- puzzles/two-sum/test.kt --
class TwoSumTest
-- puzzles/fizz-buzz/challenge.kt --
fun fizzBuzz(n: Int): List<String> = emptyList()
fun helper() = 0

class Test
-- puzzles/fizz-buzz/solutions.kt --
object SolutionLoop
-- puzzles/fizz-buzz/test.kt --
class FizzBuzzTest
-- puzzles/anagram/challenge.kt --
fun isAnagram(a: String, b: String): Boolean = false

class Test
-- puzzles/anagram/solutions.kt --
object MySolution
-- puzzles/anagram/test.kt --
class AnagramTest
-- puzzles/n-queens/challenge.kt --
fun solveNQueens(n: Int): Int = 0

class Tests
-- puzzles/n-queens/test.kt --
class NQueensTest
`

// PassingTree holds only consistent puzzles.
const PassingTree = `-- puzzles/two-sum/challenge.kt --
fun twoSum(nums: IntArray, target: Int): IntArray = intArrayOf()

class Test
-- puzzles/two-sum/solutions.kt --
object SolutionBruteForce
-- puzzles/two-sum/test.kt --
class TwoSumTest
`

// WriteTxtar extracts archive into a fresh temporary directory and returns
// its path.
func WriteTxtar(t testing.TB, archive string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", f.Name, err)
		}
	}
	return dir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the captured stdout.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the captured stderr.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t testing.TB, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t testing.TB, md string) {
	t.Helper()

	if n := strings.Count(md, "```"); n%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", n)
	}

	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
