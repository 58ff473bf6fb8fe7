package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	_ "github.com/leapstack-labs/puzzlelint/pkg/lint/rules/challenge"
	_ "github.com/leapstack-labs/puzzlelint/pkg/lint/rules/files"
	_ "github.com/leapstack-labs/puzzlelint/pkg/lint/rules/solution"
)
