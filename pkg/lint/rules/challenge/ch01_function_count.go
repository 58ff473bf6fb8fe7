package challenge

import (
	"github.com/leapstack-labs/puzzlelint/pkg/lint"
	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
	"github.com/leapstack-labs/puzzlelint/pkg/source"
)

// ExpectedFunctions is the number of top-level functions a challenge declares.
const ExpectedFunctions = 1

func init() {
	lint.Register(FunctionCount)
}

// FunctionCount requires exactly one top-level function in the challenge file.
var FunctionCount = lint.RuleDef{
	ID:          "CH01",
	Name:        "challenge.function_count",
	Group:       "challenge",
	Description: "Challenge file declares exactly one top-level function.",
	Severity:    lint.SeverityError,
	Target:      lint.TargetFile,
	Roles:       []puzzle.Role{puzzle.RoleChallenge},
	CheckFile:   checkFunctionCount,

	Rationale: `The challenge function is the entry point the solutions implement.
Helpers belong inside the Test class or in the solutions file.`,
	BadExample: `fun twoSum(nums: IntArray, target: Int): IntArray = TODO()
fun helper() = 42`,
	GoodExample: `fun twoSum(nums: IntArray, target: Int): IntArray = TODO()`,
	Fix: "Keep the single challenge function at top level and move the rest.",
}

func checkFunctionCount(f *source.File) error {
	found := f.Count(source.KindFunction)
	if found != ExpectedFunctions {
		return &lint.WrongFunctionCountError{
			Path:     f.Path,
			Found:    found,
			Expected: ExpectedFunctions,
		}
	}
	return nil
}
