// Package puzzle defines puzzle directories and the fixed set of files every
// puzzle directory must contain.
//
// The set of required roles and their file names is compiled in and identical
// for every directory:
//
//	challenge.kt  - the problem statement: one function and a Test class
//	solutions.kt  - one or more Solution* objects
//	test.kt       - the test source exercising the solutions
package puzzle
