// Package challenge provides rules for the challenge file.
//
// Rules in this package:
//   - CH01: Exactly one top-level function
//   - CH02: Exactly one top-level class named Test
package challenge
