// Package kotlin parses Kotlin sources into source.File declaration trees
// using tree-sitter.
package kotlin

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"

	"github.com/leapstack-labs/puzzlelint/pkg/source"
)

// Tree-sitter node types of interest.
const (
	nodeClass          = "class_declaration"
	nodeObject         = "object_declaration"
	nodeFunction       = "function_declaration"
	nodeCompanion      = "companion_object"
	nodeClassBody      = "class_body"
	nodeEnumClassBody  = "enum_class_body"
	nodeFunctionBody   = "function_body"
	nodeTypeIdentifier = "type_identifier"
	nodeSimpleIdent    = "simple_identifier"
)

// SyntaxError reports the first error or missing node in a parsed file.
type SyntaxError struct {
	Path string
	Pos  source.Position
	Near string
}

func (e *SyntaxError) Error() string {
	if e.Near != "" {
		return fmt.Sprintf("%s:%s: syntax error near %q", e.Path, e.Pos, e.Near)
	}
	return fmt.Sprintf("%s:%s: syntax error", e.Path, e.Pos)
}

// Parser implements source.Parser for Kotlin files.
// A fresh tree-sitter parser is created per call, so one Parser may be used
// from many goroutines.
type Parser struct {
	logger *slog.Logger
}

var _ source.Parser = (*Parser)(nil)

// NewParser creates a Kotlin parser. A nil logger discards output.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{logger: logger}
}

// Language returns "kotlin".
func (p *Parser) Language() string {
	return "kotlin"
}

// ParseFile reads path and parses it.
func (p *Parser) ParseFile(path string) (*source.File, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the puzzle registry
	if err != nil {
		return nil, err
	}
	return p.Parse(path, content)
}

// Parse parses content as the Kotlin file at path.
func (p *Parser) Parse(path string, content []byte) (*source.File, error) {
	start := time.Now()

	sp := sitter.NewParser()
	defer sp.Close()
	sp.SetLanguage(kotlin.GetLanguage())

	tree, err := sp.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if bad := structuralError(root, content); bad != nil {
		return nil, syntaxError(path, bad, content)
	}
	if root.HasError() {
		// Errors inside bodies do not change the top-level declarations.
		p.logger.Debug("ignoring syntax error inside a declaration body",
			slog.String("file", filepath.Base(path)),
			slog.String("at", position(locateError(root)).String()))
	}

	f := &source.File{
		Path:  path,
		Decls: declarations(root, content),
	}

	p.logger.Debug("parsed kotlin file",
		slog.String("file", filepath.Base(path)),
		slog.Int("declarations", len(f.Decls)),
		slog.Duration("elapsed", time.Since(start)))
	return f, nil
}

// declarations converts the declaration children of node.
func declarations(node *sitter.Node, content []byte) []source.Declaration {
	var decls []source.Declaration
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		var kind source.Kind
		var nameType string
		switch child.Type() {
		case nodeClass:
			kind, nameType = source.KindClass, nodeTypeIdentifier
		case nodeObject, nodeCompanion:
			kind, nameType = source.KindObject, nodeTypeIdentifier
		case nodeFunction:
			kind, nameType = source.KindFunction, nodeSimpleIdent
		default:
			continue
		}

		decls = append(decls, source.Declaration{
			Kind:    kind,
			Name:    childText(child, nameType, content),
			Pos:     position(child),
			Members: members(child, content),
		})
	}
	return decls
}

// members returns the declarations inside a class or object body.
func members(node *sitter.Node, content []byte) []source.Declaration {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if t := child.Type(); t == nodeClassBody || t == nodeEnumClassBody {
			return declarations(child, content)
		}
	}
	return nil
}

// childText returns the text of the first direct named child of type typ.
func childText(node *sitter.Node, typ string, content []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == typ {
			return child.Content(content)
		}
	}
	return ""
}

func position(n *sitter.Node) source.Position {
	p := n.StartPoint()
	return source.Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

func syntaxError(path string, bad *sitter.Node, content []byte) *SyntaxError {
	near := bad.Content(content)
	if len(near) > 32 {
		near = near[:32]
	}
	return &SyntaxError{Path: path, Pos: position(bad), Near: near}
}

// structuralError returns the first error that makes the top-level
// declarations unreliable: an ERROR or MISSING node directly under root, or
// one in a declaration header (modifiers, keyword, name, parameters).
// Errors inside class, object or function bodies are not structural.
func structuralError(root *sitter.Node, content []byte) *sitter.Node {
	if !root.HasError() {
		return nil
	}
	count := int(root.ChildCount())
	for i := 0; i < count; i++ {
		child := root.Child(i)
		if isBad(child) {
			if i+1 < count && isFunInterface(child, root.Child(i+1), content) {
				continue
			}
			return child
		}
		switch child.Type() {
		case nodeClass, nodeObject, nodeFunction:
			if bad := headerError(child, content); bad != nil {
				return bad
			}
		}
	}
	return nil
}

// headerError checks the direct children of a declaration, skipping its body.
func headerError(decl *sitter.Node, content []byte) *sitter.Node {
	if !decl.HasError() {
		return nil
	}
	count := int(decl.ChildCount())
	for i := 0; i < count; i++ {
		child := decl.Child(i)
		switch child.Type() {
		case nodeClassBody, nodeEnumClassBody, nodeFunctionBody:
			continue
		}
		if isBad(child) && i+1 < count && isFunInterface(child, decl.Child(i+1), content) {
			continue
		}
		if child.HasError() || child.IsMissing() {
			return locateError(child)
		}
	}
	return nil
}

// isFunInterface recognises the "fun" modifier of a functional interface,
// which the grammar does not know and leaves as a lone ERROR token.
func isFunInterface(bad, next *sitter.Node, content []byte) bool {
	return bad.Type() == "ERROR" &&
		strings.TrimSpace(bad.Content(content)) == "fun" &&
		(next.Type() == nodeClass || next.Type() == "interface") &&
		strings.HasPrefix(strings.TrimSpace(next.Content(content)), "interface")
}

func isBad(n *sitter.Node) bool {
	return n.Type() == "ERROR" || n.IsMissing()
}

// locateError returns the first ERROR or MISSING node under n. When the
// grammar flags an error without one, it falls back to the first child
// carrying the error, then to n itself.
func locateError(n *sitter.Node) *sitter.Node {
	if bad := firstBadNode(n); bad != nil {
		return bad
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child.HasError() {
			return child
		}
	}
	return n
}

// firstBadNode walks the tree depth-first for an ERROR or MISSING node.
func firstBadNode(n *sitter.Node) *sitter.Node {
	if isBad(n) {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstBadNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
