package solution

import (
	"errors"

	"github.com/leapstack-labs/puzzlelint/pkg/lint"
	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
	"github.com/leapstack-labs/puzzlelint/pkg/source"
)

// NamePrefix is the case-sensitive prefix every solution object carries.
const NamePrefix = "Solution"

func init() {
	lint.Register(SolutionObject)
}

// SolutionObject requires at least one top-level object in the solutions
// file, each named with the Solution prefix.
var SolutionObject = lint.RuleDef{
	ID:          "SL01",
	Name:        "solution.solution_object",
	Group:       "solution",
	Description: "Solutions file declares top-level objects named Solution*.",
	Severity:    lint.SeverityError,
	Target:      lint.TargetFile,
	Roles:       []puzzle.Role{puzzle.RoleSolutions},
	CheckFile:   checkSolutionObject,

	Rationale: `The test file runs every solution object against the same cases.
It finds them by the Solution prefix, so an object named otherwise is never tested.`,
	BadExample: `object FastSolver : Challenge {
    override fun solve(input: IntArray) = input.sum()
}`,
	GoodExample: `object SolutionIterative : Challenge {
    override fun solve(input: IntArray) = input.sum()
}`,
	Fix: "Rename the object so its name starts with Solution.",
}

// checkSolutionObject reports every offending object, not just the first.
func checkSolutionObject(f *source.File) error {
	objects := source.Collect(f.TopLevel(source.KindObject))
	if len(objects) == 0 {
		return &lint.NoSolutionObjectError{Path: f.Path}
	}

	var errs []error
	for _, obj := range objects {
		if obj.HasNamePrefix(NamePrefix) {
			continue
		}
		errs = append(errs, &lint.BadSolutionNameError{
			Path:   f.Path,
			Name:   obj.Name,
			Prefix: NamePrefix,
			Pos:    obj.Pos,
		})
	}
	return errors.Join(errs...)
}
