package challenge

import (
	"github.com/leapstack-labs/puzzlelint/pkg/lint"
	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
	"github.com/leapstack-labs/puzzlelint/pkg/source"
)

// TestClassName is the exact name of the challenge's test class.
const TestClassName = "Test"

func init() {
	lint.Register(TestClass)
}

// TestClass requires exactly one top-level class named Test in the challenge
// file. Other top-level classes are allowed.
var TestClass = lint.RuleDef{
	ID:          "CH02",
	Name:        "challenge.test_class",
	Group:       "challenge",
	Description: "Challenge file declares exactly one top-level class named Test.",
	Severity:    lint.SeverityError,
	Target:      lint.TargetFile,
	Roles:       []puzzle.Role{puzzle.RoleChallenge},
	CheckFile:   checkTestClass,

	Rationale: `The test harness instantiates the class called Test by name.`,
	BadExample: `fun twoSum(nums: IntArray, target: Int): IntArray = TODO()

class TwoSumTest`,
	GoodExample: `fun twoSum(nums: IntArray, target: Int): IntArray = TODO()

class Test`,
	Fix: "Rename the test class to Test.",
}

func checkTestClass(f *source.File) error {
	found := 0
	for range source.Filter(f.TopLevel(source.KindClass), source.NamedExactly(TestClassName)) {
		found++
	}
	if found != 1 {
		return &lint.MissingTestClassError{Path: f.Path, Name: TestClassName, Found: found}
	}
	return nil
}
