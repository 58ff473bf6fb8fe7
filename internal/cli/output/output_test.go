package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTest(mode Mode, tty bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, tty, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode Mode
		tty  bool
		want OutputMode
	}{
		{mode: ModeAuto, tty: true, want: ModeText},
		{mode: ModeAuto, tty: false, want: ModeMarkdown},
		{mode: "", tty: false, want: ModeMarkdown},
		{mode: " JSON ", tty: true, want: ModeJSON},
		{mode: ModeYAML, tty: true, want: ModeYAML},
		{mode: ModeText, tty: false, want: ModeText},
		{mode: "bogus", tty: true, want: ModeText},
	}
	for _, tt := range tests {
		r, _, _ := newTest(tt.mode, tt.tty)
		assert.Equal(t, tt.want, r.EffectiveMode(), "mode %q tty %v", tt.mode, tt.tty)
	}
}

func TestRenderer_NonTTYHasNoANSI(t *testing.T) {
	r, out, errOut := newTest(ModeText, false)

	r.Header(1, "Puzzles")
	r.Success("all good")
	r.Warning("careful")
	r.Error("broken")
	r.Println(r.Styles().Path.Render("two-sum"))

	assert.False(t, ansi.MatchString(out.String()), "unexpected ANSI in %q", out.String())
	assert.False(t, ansi.MatchString(errOut.String()))
	assert.Contains(t, out.String(), "✓ all good")
	assert.Contains(t, errOut.String(), "broken")
}

func TestRenderer_Markdown(t *testing.T) {
	r, out, errOut := newTest(ModeAuto, false)

	r.Header(2, "Rules")
	r.Success("done")
	r.Error("oops")

	assert.Contains(t, out.String(), "## Rules\n")
	assert.Contains(t, out.String(), "✓ done\n")
	assert.Equal(t, "**Error:** oops\n", errOut.String())
}

func TestRenderer_Structured(t *testing.T) {
	payload := RoleOutput{Role: "solutions", File: "solutions.kt"}

	r, out, _ := newTest(ModeJSON, false)
	ok, err := r.Structured(payload)
	require.NoError(t, err)
	assert.True(t, ok)
	var got RoleOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, payload, got)

	r, out, _ = newTest(ModeYAML, false)
	ok, err = r.Structured(payload)
	require.NoError(t, err)
	assert.True(t, ok)
	got = RoleOutput{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, payload, got)

	r, out, _ = newTest(ModeText, true)
	ok, err = r.Structured(payload)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestRenderer_Table(t *testing.T) {
	header := []string{"Role", "File"}
	rows := [][]string{{"challenge", "challenge.kt"}, {"test", "test.kt"}}

	r, out, _ := newTest(ModeMarkdown, false)
	r.Table(header, rows)
	assert.Contains(t, out.String(), "| challenge | challenge.kt |")

	r, out, _ = newTest(ModeText, false)
	r.Table(header, rows)
	text := out.String()
	assert.Contains(t, text, "challenge.kt")
	assert.True(t, strings.Contains(text, "┌") || strings.Contains(text, "│"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "# Zero", FormatHeader(0, "Zero"))
	assert.Equal(t, "- **Group:** files", FormatKeyValue("Group", "files"))
	assert.Equal(t, "Challenge", Title("challenge"))
	assert.Len(t, Modes(), 5)
}
