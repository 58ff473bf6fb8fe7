// Package solution provides rules for the solutions file.
//
// Rules in this package:
//   - SL01: Top-level objects exist and are named Solution*
package solution
