package source

import (
	"fmt"
	"strings"
)

// Kind tags a declaration.
type Kind int

// Declaration kinds.
const (
	// KindFunction is a named function declaration.
	KindFunction Kind = iota
	// KindClass is a class, interface or enum class declaration.
	KindClass
	// KindObject is an object (singleton) declaration.
	KindObject
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Position is a 1-based line and column in a source file.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String formats the position as "line:column", or "-" when unknown.
func (p Position) String() string {
	if p.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Declaration is a named construct declared in a source file.
type Declaration struct {
	Kind Kind
	// Name is empty when the declaration has no name (e.g. an anonymous
	// companion object). An empty name is a valid, checkable state.
	Name    string
	Pos     Position
	Members []Declaration
}

// HasName reports whether the declaration carries a name.
func (d Declaration) HasName() bool {
	return d.Name != ""
}

// HasNamePrefix reports whether the declaration's name starts with prefix.
// A declaration without a name never matches, whatever the prefix.
func (d Declaration) HasNamePrefix(prefix string) bool {
	if !d.HasName() {
		return false
	}
	return strings.HasPrefix(d.Name, prefix)
}

// DisplayName returns the name, or "<anonymous>" when absent.
func (d Declaration) DisplayName() string {
	if !d.HasName() {
		return "<anonymous>"
	}
	return d.Name
}

// Parser turns a source file on disk into a declaration tree.
type Parser interface {
	// ParseFile reads and parses path. It fails when the file is absent or
	// cannot be parsed into a declaration tree.
	ParseFile(path string) (*File, error)

	// Language returns the language name, e.g. "kotlin".
	Language() string
}
