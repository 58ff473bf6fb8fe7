// Package rules registers every built-in consistency rule.
//
// Import it for its side effects:
//
//	import _ "github.com/leapstack-labs/puzzlelint/pkg/lint/rules"
//
// Categories:
//   - FL (files): required files exist
//   - SL (solution): solution file shape
//   - CH (challenge): challenge file shape
package rules
