package source

import (
	"iter"
	"slices"
)

// File is the declaration tree of one parsed source file.
type File struct {
	Path  string
	Decls []Declaration
}

// TopLevel yields the file's direct top-level declarations of the given kind,
// in source order. Nested members are not visited.
func (f *File) TopLevel(kind Kind) iter.Seq[Declaration] {
	return func(yield func(Declaration) bool) {
		if f == nil {
			return
		}
		for _, d := range f.Decls {
			if d.Kind != kind {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Count returns the number of top-level declarations of the given kind.
func (f *File) Count(kind Kind) int {
	n := 0
	for range f.TopLevel(kind) {
		n++
	}
	return n
}

// Filter yields the elements of seq for which keep returns true.
func Filter(seq iter.Seq[Declaration], keep func(Declaration) bool) iter.Seq[Declaration] {
	return func(yield func(Declaration) bool) {
		for d := range seq {
			if keep(d) && !yield(d) {
				return
			}
		}
	}
}

// Collect gathers a declaration sequence into a slice.
func Collect(seq iter.Seq[Declaration]) []Declaration {
	return slices.Collect(seq)
}

// NamedExactly returns a predicate matching declarations called name.
func NamedExactly(name string) func(Declaration) bool {
	return func(d Declaration) bool {
		return d.HasName() && d.Name == name
	}
}
