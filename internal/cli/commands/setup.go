package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/puzzlelint/internal/cli/config"
	"github.com/leapstack-labs/puzzlelint/internal/cli/output"
	"github.com/leapstack-labs/puzzlelint/internal/discovery"
	"github.com/leapstack-labs/puzzlelint/pkg/lint"
	_ "github.com/leapstack-labs/puzzlelint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
	"github.com/leapstack-labs/puzzlelint/pkg/source/kotlin"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
// A non-empty format overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// PuzzlesRoot returns the root to scan: the argument when given, otherwise
// the configured puzzles directory.
func (c *CommandContext) PuzzlesRoot(args []string) (string, error) {
	root := c.Cfg.PuzzlesDir
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	return abs, nil
}

// Discover lists the puzzle directories under root using the configured
// depth and exclusions.
func (c *CommandContext) Discover(root string) ([]puzzle.Directory, error) {
	dirs, err := discovery.List(root, discovery.Options{
		Depth:   c.Cfg.Depth,
		Exclude: c.Cfg.Exclude,
		Logger:  c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover puzzles: %w", err)
	}
	return dirs, nil
}

// NewAnalyzer creates an analyzer backed by the Kotlin parser.
func (c *CommandContext) NewAnalyzer(lintCfg *lint.Config) *lint.Analyzer {
	return lint.NewAnalyzer(lintCfg, kotlin.NewParser(c.Logger), c.Logger)
}

// getConfig returns the current configuration, or defaults when the command
// runs without the root command (as in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
