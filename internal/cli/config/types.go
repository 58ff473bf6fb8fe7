// Package config provides configuration management for the puzzlelint CLI.
//
// Values are layered with koanf: defaults, then puzzlelint.yaml (searched
// upward from the working directory), then PUZZLELINT_ environment
// variables, then explicitly set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	PuzzlesDir   string     `koanf:"puzzles_dir" validate:"required"`
	Depth        int        `koanf:"depth" validate:"min=1,max=8"`
	Exclude      []string   `koanf:"exclude"`
	Concurrency  int        `koanf:"concurrency" validate:"min=0,max=256"`
	Verbose      bool       `koanf:"verbose"`
	OutputFormat string     `koanf:"output" validate:"oneof=auto text markdown json yaml"`
	LogLevel     string     `koanf:"log_level" validate:"oneof=debug info warn error"`
	Lint         LintConfig `koanf:"lint"`

	// ProjectRoot is the directory relative paths resolve against: the
	// directory holding the config file, or the working directory.
	ProjectRoot string `koanf:"-"`
}

// LintConfig selects which rules run and how loudly they report.
type LintConfig struct {
	Disabled []string          `koanf:"disabled" validate:"dive,required"`
	Severity map[string]string `koanf:"severity" validate:"dive,keys,required,endkeys,oneof=error warning info hint"`
}

// Default configuration values.
const (
	DefaultPuzzlesDir  = "puzzles"
	DefaultDepth       = 1
	DefaultConcurrency = 0      // GOMAXPROCS
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel    = "warn"
)

// configFileNames are tried in order in each searched directory.
var configFileNames = []string{"puzzlelint.yaml", "puzzlelint.yml"}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		PuzzlesDir:   DefaultPuzzlesDir,
		Depth:        DefaultDepth,
		Concurrency:  DefaultConcurrency,
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
	}
}
