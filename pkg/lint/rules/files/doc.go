// Package files provides rules about the presence of required files.
//
// Rules in this package:
//   - FL01: Required file exists
package files
