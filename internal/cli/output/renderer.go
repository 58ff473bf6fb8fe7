// Package output renders command results for terminals, pipes and tools.
//
// Output adapts to environment:
//   - Terminal: styled text with colors
//   - Piped/Scripted: markdown
//   - json / yaml: machine-readable documents
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// OutputMode selects how results are rendered.
type OutputMode string

// Mode is shorthand for OutputMode.
type Mode = OutputMode

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Modes lists every accepted mode, for flag completion.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON), string(ModeYAML)}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Non-TTY renderers never emit ANSI escape codes.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	mode = OutputMode(strings.ToLower(strings.TrimSpace(string(mode))))
	if mode == "" {
		mode = ModeAuto
	}

	lr := lipgloss.NewRenderer(out)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: newStyles(lr),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}

// EffectiveMode resolves ModeAuto: text on a terminal, markdown otherwise.
func (r *Renderer) EffectiveMode() OutputMode {
	switch r.mode {
	case ModeText, ModeMarkdown, ModeJSON, ModeYAML:
		return r.mode
	default:
		if r.isTTY {
			return ModeText
		}
		return ModeMarkdown
	}
}

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles { return r.styles }

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a heading.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		r.Println("")
		return
	}
	r.Println(r.styles.Header.Render(text))
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	r.status(r.styles.Success, "✓", msg)
}

// Warning writes a warning message.
func (r *Renderer) Warning(msg string) {
	r.status(r.styles.Warning, "!", msg)
}

// Error writes an error message to the error stream.
func (r *Renderer) Error(msg string) {
	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintf(r.errOut, "**Error:** %s\n", msg)
		return
	}
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("✗ "+msg))
}

func (r *Renderer) status(style lipgloss.Style, mark, msg string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Printf("%s %s\n", mark, msg)
		return
	}
	r.Println(style.Render(mark + " " + msg))
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Structured writes v as JSON or YAML according to the effective mode.
// It reports false when the mode is not machine-readable.
func (r *Renderer) Structured(v any) (bool, error) {
	switch r.EffectiveMode() {
	case ModeJSON:
		return true, r.JSON(v)
	case ModeYAML:
		return true, r.YAML(v)
	default:
		return false, nil
	}
}
