package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/puzzlelint/pkg/lint"
)

// newFlags mirrors the root command's persistent flags.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("puzzles-dir", "", "")
	fs.Int("depth", 0, "")
	fs.Int("concurrency", 0, "")
	fs.BoolP("verbose", "v", false, "")
	fs.StringP("output", "o", "", "")
	fs.String("log-level", "", "")
	return fs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, DefaultPuzzlesDir), cfg.PuzzlesDir)
	assert.Equal(t, DefaultDepth, cfg.Depth)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, cwd, cfg.ProjectRoot)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_FileFoundUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "puzzlelint.yaml"), `
puzzles_dir: src/puzzles
depth: 2
exclude:
  - drafts
  - "*.bak"
lint:
  disabled: [CH02]
  severity:
    SL01: info
`)
	nested := filepath.Join(root, "src", "puzzles", "two-sum")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	realRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(cfg.ProjectRoot)
	require.NoError(t, err)
	assert.Equal(t, realRoot, gotRoot)
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, "src", "puzzles"), cfg.PuzzlesDir)
	assert.Equal(t, 2, cfg.Depth)
	assert.Equal(t, []string{"drafts", "*.bak"}, cfg.Exclude)
	assert.Equal(t, []string{"CH02"}, cfg.Lint.Disabled)
	assert.Equal(t, map[string]string{"SL01": "info"}, cfg.Lint.Severity)
	assert.NotEmpty(t, GetConfigFileUsed())
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "puzzlelint.yml"), "depth: 2\noutput: text\nconcurrency: 4\n")

	t.Setenv("PUZZLELINT_DEPTH", "3")
	t.Setenv("PUZZLELINT_OUTPUT", "json")
	t.Setenv("PUZZLELINT_EXCLUDE", "a, b")
	t.Setenv("PUZZLELINT_LINT_DISABLED", "FL01,SL01")
	ResetConfig()

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--output", "yaml", "--puzzles-dir", "elsewhere"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Depth, "env beats file")
	assert.Equal(t, 4, cfg.Concurrency, "file beats defaults")
	assert.Equal(t, "yaml", cfg.OutputFormat, "flag beats env")
	assert.Equal(t, filepath.Join(cwd, "elsewhere"), cfg.PuzzlesDir)
	assert.Equal(t, []string{"a", "b"}, cfg.Exclude)
	assert.Equal(t, []string{"FL01", "SL01"}, cfg.Lint.Disabled)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		explicit  string
		errSubstr string
	}{
		{
			name:      "bad output",
			content:   "output: html\n",
			errSubstr: "OutputFormat",
		},
		{
			name:      "bad depth",
			content:   "depth: 0\n",
			errSubstr: "Depth",
		},
		{
			name:      "bad severity",
			content:   "lint:\n  severity:\n    SL01: loud\n",
			errSubstr: "Severity",
		},
		{
			name:      "malformed yaml",
			content:   "depth: [\n",
			errSubstr: "error reading config file",
		},
		{
			name:      "missing explicit file",
			explicit:  "nope.yaml",
			errSubstr: "error reading config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			if tt.content != "" {
				writeFile(t, filepath.Join(dir, "puzzlelint.yaml"), tt.content)
			}
			ResetConfig()

			_, err := LoadConfig(tt.explicit, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level   string
		verbose bool
		want    slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "error", verbose: true, want: slog.LevelDebug},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level, Verbose: tt.verbose}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q verbose %v", tt.level, tt.verbose)
	}
}

func TestConfig_LintSettings(t *testing.T) {
	cfg := &Config{
		Concurrency: 3,
		Lint: LintConfig{
			Disabled: []string{"ch01"},
			Severity: map[string]string{"SL01": "hint"},
		},
	}

	lc := cfg.LintSettings()
	assert.Equal(t, 3, lc.Concurrency)
	assert.True(t, lc.IsDisabled("CH01"))
	assert.Equal(t, lint.SeverityHint, lc.GetSeverity("SL01", lint.SeverityError))
}

func TestGetLogger_Fallback(t *testing.T) {
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)

	want := slog.Default()
	ctx := context.WithValue(context.Background(), LoggerKey(), want)
	assert.Same(t, want, GetLogger(ctx))
}
