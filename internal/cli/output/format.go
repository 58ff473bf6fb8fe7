package output

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title title-cases s, e.g. "challenge" becomes "Challenge".
func Title(s string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English).String(s)
}

// FormatHeader formats a markdown heading.
func FormatHeader(level int, text string) string {
	return strings.Repeat("#", max(level, 1)) + " " + text
}

// FormatKeyValue formats a markdown list item with a bold key.
func FormatKeyValue(key, value string) string {
	return "- **" + key + ":** " + value
}

// Table renders rows under header: a light box table in text mode, a pipe
// table in markdown mode.
func (r *Renderer) Table(header []string, rows [][]string) {
	writeTable(r.out, header, rows, r.EffectiveMode() == ModeMarkdown)
}

func writeTable(w io.Writer, header []string, rows [][]string, markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
