package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/puzzlelint/internal/cli/config"
	"github.com/leapstack-labs/puzzlelint/internal/cli/output"
	"github.com/leapstack-labs/puzzlelint/pkg/lint"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format   string   // Output format override
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only these rules
	Severity string   // Minimum severity that fails the run
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Check puzzle directories for consistency",
		Long: `Check every puzzle directory for its required files and conventions.

Each puzzle must contain challenge.kt, solutions.kt and test.kt. The
challenge declares one top-level function and one class named Test; the
solutions file declares objects named Solution*.

All failures are reported; one broken puzzle never hides another.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON / YAML: Machine-readable format`,
		Example: `  # Check the configured puzzles directory
  puzzlelint check

  # Check a specific tree
  puzzlelint check ./src/puzzles

  # Output as JSON
  puzzlelint check --format json

  # Skip the test class rule
  puzzlelint check --disable CH02

  # Only fail on errors
  puzzlelint check --severity error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, opts.Format)
			report, threshold, err := runCheck(cmd.Context(), cmdCtx, args, opts)
			if err != nil {
				return err
			}
			if err := renderReport(cmdCtx.Renderer, report, threshold); err != nil {
				return err
			}
			if !report.Passed(threshold) {
				return lint.ErrCheckFailed
			}
			return nil
		},
	}

	addCheckFlags(cmd, opts)
	return cmd
}

func addCheckFlags(cmd *cobra.Command, opts *CheckOptions) {
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity that fails: error, warning, info, hint")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})
	ruleIDs := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var ids []string
		for _, r := range lint.GetAll() {
			ids = append(ids, r.ID+"\t"+r.Description)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
	_ = cmd.RegisterFlagCompletionFunc("disable", ruleIDs)
	_ = cmd.RegisterFlagCompletionFunc("rule", ruleIDs)
}

// runCheck discovers puzzles and runs the enabled rules against them.
func runCheck(ctx context.Context, cmdCtx *CommandContext, args []string, opts *CheckOptions) (*checkRun, lint.Severity, error) {
	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		return nil, 0, fmt.Errorf("invalid --severity %q: want error, warning, info or hint", opts.Severity)
	}

	lintCfg, err := buildLintConfig(cmdCtx.Cfg, opts)
	if err != nil {
		return nil, 0, err
	}

	root, err := cmdCtx.PuzzlesRoot(args)
	if err != nil {
		return nil, 0, err
	}
	dirs, err := cmdCtx.Discover(root)
	if err != nil {
		return nil, 0, err
	}

	report, err := cmdCtx.NewAnalyzer(lintCfg).Analyze(ctx, dirs)
	if err != nil {
		return nil, 0, err
	}
	return &checkRun{Report: report, Root: root}, threshold, nil
}

// checkRun is a report plus the root it was produced for.
type checkRun struct {
	*lint.Report
	Root string
}

// buildLintConfig merges the config file's lint section with CLI flags.
// Flags take precedence.
func buildLintConfig(cfg *config.Config, opts *CheckOptions) (*lint.Config, error) {
	lintCfg := lint.NewConfig()
	if cfg != nil {
		for _, id := range cfg.Lint.Disabled {
			if _, ok := lint.GetByID(id); !ok {
				return nil, fmt.Errorf("lint.disabled: unknown rule %q (see 'puzzlelint rules')", id)
			}
		}
		for id := range cfg.Lint.Severity {
			if _, ok := lint.GetByID(id); !ok {
				return nil, fmt.Errorf("lint.severity: unknown rule %q (see 'puzzlelint rules')", id)
			}
		}
		lintCfg = cfg.LintSettings()
	}

	for _, id := range opts.Disable {
		if id = strings.TrimSpace(id); id == "" {
			continue
		}
		if _, ok := lint.GetByID(id); !ok {
			return nil, fmt.Errorf("--disable: unknown rule %q (see 'puzzlelint rules')", id)
		}
		lintCfg.Disable(id)
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			rule, ok := lint.GetByID(id)
			if !ok {
				return nil, fmt.Errorf("unknown rule %q (see 'puzzlelint rules')", strings.TrimSpace(id))
			}
			enabled[rule.ID] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabled[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg, nil
}

func renderReport(r *output.Renderer, run *checkRun, threshold lint.Severity) error {
	if ok, err := r.Structured(checkOutput(run, threshold)); ok {
		return err
	}

	if len(run.Directories) == 0 {
		r.Warning(fmt.Sprintf("No puzzle directories found under %s", run.Root))
		return nil
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		renderReportMarkdown(r, run, threshold)
	} else {
		renderReportText(r, run, threshold)
	}

	s := run.Summary(threshold)
	r.Println("")
	r.Table(
		[]string{"Puzzles", "Failing", "Checks", "Passed", "Failed", "Skipped"},
		[][]string{{
			strconv.Itoa(s.Directories), strconv.Itoa(s.FailedDirectories), strconv.Itoa(s.Checks),
			strconv.Itoa(s.Passed), strconv.Itoa(s.Failed), strconv.Itoa(s.Skipped),
		}},
	)

	if s.FailedDirectories == 0 {
		r.Success(fmt.Sprintf("All %d puzzles are consistent", s.Directories))
	} else {
		r.Error(fmt.Sprintf("%d of %d puzzles have problems", s.FailedDirectories, s.Directories))
	}
	return nil
}

func renderReportText(r *output.Renderer, run *checkRun, threshold lint.Severity) {
	st := r.Styles()
	for _, d := range run.Directories {
		failures := d.Failures(threshold)
		if len(failures) == 0 {
			r.Printf("%s %s\n", st.Success.Render("✓"), d.Dir.Name())
			continue
		}
		r.Printf("%s %s\n", st.Error.Render("✗"), st.Path.Render(d.Dir.Name()))
		for _, res := range failures {
			for _, msg := range res.Messages() {
				r.Printf("    %s  %s  %s\n",
					severityStyle(r, res.Severity),
					st.RuleID.Render(res.RuleID),
					msg,
				)
			}
		}
		for _, res := range d.Results {
			if res.Skipped {
				r.Printf("    %s\n", st.Muted.Render(fmt.Sprintf("%s skipped on %s: %s", res.RuleID, res.Role.FileName(), res.SkipReason)))
			}
		}
	}
}

func renderReportMarkdown(r *output.Renderer, run *checkRun, threshold lint.Severity) {
	r.Println(output.FormatHeader(1, "Puzzle Check"))
	r.Println("")
	r.Println(output.FormatKeyValue("Root", run.Root))
	r.Println(output.FormatKeyValue("Run", run.RunID))
	r.Println("")

	for _, d := range run.Directories {
		failures := d.Failures(threshold)
		status := "passed"
		if len(failures) > 0 {
			status = "failed"
		}
		r.Println(output.FormatHeader(2, fmt.Sprintf("%s (%s)", d.Dir.Name(), status)))
		r.Println("")
		for _, res := range failures {
			for _, msg := range res.Messages() {
				r.Printf("- **%s** %s: %s\n", res.RuleID, res.Severity, msg)
			}
		}
		for _, res := range d.Results {
			if res.Skipped {
				r.Printf("- %s skipped on %s: %s\n", res.RuleID, res.Role.FileName(), res.SkipReason)
			}
		}
		if len(failures) > 0 {
			r.Println("")
		}
	}
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

// checkOutput converts a run to its machine-readable form.
func checkOutput(run *checkRun, threshold lint.Severity) output.CheckOutput {
	s := run.Summary(threshold)
	out := output.CheckOutput{
		RunID:      run.RunID,
		Root:       run.Root,
		StartedAt:  run.StartedAt,
		DurationMS: run.Duration().Milliseconds(),
		Threshold:  threshold.String(),
		Passed:     run.Passed(threshold),
		Summary: output.CheckSummary{
			Directories:       s.Directories,
			FailedDirectories: s.FailedDirectories,
			Checks:            s.Checks,
			Passed:            s.Passed,
			Failed:            s.Failed,
			Skipped:           s.Skipped,
		},
		Directories: make([]output.DirectoryOutput, 0, len(run.Directories)),
	}

	for _, d := range run.Directories {
		dir := output.DirectoryOutput{
			Path:   d.Dir.Path(),
			Name:   d.Dir.Name(),
			Passed: len(d.Failures(threshold)) == 0,
		}
		for _, res := range d.Results {
			ro := output.ResultOutput{
				RuleID:   res.RuleID,
				Role:     res.Role.String(),
				File:     res.Path,
				Severity: res.Severity.String(),
				Status:   output.StatusPassed,
			}
			switch {
			case res.Skipped:
				ro.Status = output.StatusSkipped
				ro.SkipReason = res.SkipReason
			case res.Failed():
				ro.Status = output.StatusFailed
				ro.Messages = res.Messages()
			}
			dir.Results = append(dir.Results, ro)
		}
		out.Directories = append(out.Directories, dir)
	}
	return out
}
