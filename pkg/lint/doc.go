// Package lint is the convention-checking engine for puzzle directories.
//
// # Architecture
//
//  1. Rules (RuleDef) are plain data plus a check function. They register
//     themselves from init() in the rules subpackages.
//  2. The Analyzer turns puzzle directories into an explicit plan of
//     (directory x rule x role) invocations, then executes the plan.
//  3. Every invocation yields one CheckResult. Results are independent: a
//     directory can fail several rules in the same run.
//
// # Rule Registration
//
//	import _ "github.com/leapstack-labs/puzzlelint/pkg/lint/rules" // register all rules
//
// # Rule Categories
//
//   - FL (Files): required files exist
//   - SL (Solution): solutions.kt declares Solution* objects
//   - CH (Challenge): challenge.kt has one function and one Test class
//
// # Usage
//
//	analyzer := lint.NewAnalyzer(lint.NewConfig(), kotlin.NewParser(logger), logger)
//	report, err := analyzer.Analyze(ctx, dirs)
//	if !report.Passed(lint.SeverityWarning) {
//		// inspect report.Directories
//	}
package lint
