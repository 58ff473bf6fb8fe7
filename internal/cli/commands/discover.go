package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/puzzlelint/internal/cli/output"
	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
)

// NewDiscoverCommand creates the discover command.
func NewDiscoverCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "discover [root]",
		Short: "List puzzle directories and their required files",
		Long: `List the puzzle directories found under the root and which of the
required files each one has. No rules are run.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table (agent-friendly)
  - JSON / YAML: Machine-readable format`,
		Example: `  # Discover puzzles under the configured directory
  puzzlelint discover

  # Puzzles nested two levels deep
  puzzlelint discover ./src --depth 2

  # Output as JSON
  puzzlelint discover --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(NewCommandContext(cmd, format), args)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json, yaml")
	return cmd
}

func runDiscover(cmdCtx *CommandContext, args []string) error {
	root, err := cmdCtx.PuzzlesRoot(args)
	if err != nil {
		return err
	}
	dirs, err := cmdCtx.Discover(root)
	if err != nil {
		return err
	}

	result := discoverOutput(root, dirs)
	cmdCtx.Logger.Debug("discovered puzzles", "root", root, "count", len(dirs))

	r := cmdCtx.Renderer
	if ok, err := r.Structured(result); ok {
		return err
	}

	if len(result.Puzzles) == 0 {
		r.Warning(fmt.Sprintf("No puzzle directories found under %s", root))
		return nil
	}

	r.Header(1, "Puzzles")
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Root", root))
		r.Println("")
	} else {
		r.Println(r.Styles().Muted.Render(root))
	}

	header := []string{"Puzzle"}
	for _, role := range puzzle.Roles() {
		header = append(header, role.FileName())
	}
	rows := make([][]string, 0, len(result.Puzzles))
	for _, p := range result.Puzzles {
		row := []string{p.Name}
		for _, f := range p.Files {
			row = append(row, presence(f.Present))
		}
		rows = append(rows, row)
	}
	r.Table(header, rows)

	s := result.Summary
	if s.Incomplete == 0 {
		r.Success(fmt.Sprintf("Discovered %d puzzles", s.Puzzles))
	} else {
		r.Warning(fmt.Sprintf("Discovered %d puzzles, %d missing required files", s.Puzzles, s.Incomplete))
	}
	return nil
}

func discoverOutput(root string, dirs []puzzle.Directory) output.DiscoverOutput {
	out := output.DiscoverOutput{
		Root:    root,
		Puzzles: make([]output.PuzzleOutput, 0, len(dirs)),
	}
	for _, dir := range dirs {
		p := output.PuzzleOutput{Name: dir.Name(), Path: dir.Path(), Complete: true}
		for _, req := range dir.RequiredFiles() {
			info, err := os.Stat(req.Path)
			present := err == nil && info.Mode().IsRegular()
			if !present {
				p.Complete = false
			}
			p.Files = append(p.Files, output.FileOutput{
				Role:    req.Role.String(),
				Path:    req.Path,
				Present: present,
			})
		}
		if !p.Complete {
			out.Summary.Incomplete++
		}
		out.Puzzles = append(out.Puzzles, p)
	}
	out.Summary.Puzzles = len(out.Puzzles)
	return out
}

func presence(ok bool) string {
	if ok {
		return "yes"
	}
	return "missing"
}
