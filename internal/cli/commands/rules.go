package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/puzzlelint/internal/cli/output"
	"github.com/leapstack-labs/puzzlelint/pkg/lint"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List consistency rules",
		Long: `List all consistency rules with their documentation.

Rules are organized by group (files, solution, challenge).
Use --verbose to see the rationale of each rule, or pass a rule ID
for examples and fix guidance.`,
		Example: `  # List all rules
  puzzlelint rules

  # Show details for a specific rule
  puzzlelint rules SL01

  # List rules in the challenge group
  puzzlelint rules --group challenge

  # Output as JSON
  puzzlelint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// RulesOutput is the machine-readable structure for rules listing.
type RulesOutput struct {
	Rules []lint.RuleInfo `json:"rules" yaml:"rules"`
	Count int             `json:"count" yaml:"count"`
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	rules := filterRulesByGroup(lint.AllRules(), opts.Group)
	if opts.Group != "" && len(rules) == 0 {
		return fmt.Errorf("no rules in group %q", opts.Group)
	}

	if ok, err := r.Structured(RulesOutput{Rules: rules, Count: len(rules)}); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		listRulesMarkdown(r, rules, opts.Verbose)
		return nil
	}
	listRulesText(r, rules, opts.Verbose)
	return nil
}

// filterRulesByGroup keeps rules in group, ordered by group then ID.
func filterRulesByGroup(rules []lint.RuleInfo, group string) []lint.RuleInfo {
	var filtered []lint.RuleInfo
	for _, rule := range rules {
		if group == "" || strings.EqualFold(rule.Group, group) {
			filtered = append(filtered, rule)
		}
	}
	// AllRules is sorted by ID, so a stable sort keeps IDs ordered per group.
	slices.SortStableFunc(filtered, func(a, b lint.RuleInfo) int {
		return strings.Compare(a.Group, b.Group)
	})
	return filtered
}

func listRulesText(r *output.Renderer, rules []lint.RuleInfo, verbose bool) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header.Render(fmt.Sprintf("Consistency Rules (%d)", len(rules))))
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println(styles.Bold.Render("  " + output.Title(currentGroup)))
		}

		r.Printf("    %s  %s - %s  %s\n",
			styles.Muted.Render(rule.ID),
			rule.Name,
			getSeverityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()),
			styles.Muted.Render(strings.Join(rule.Files, ", ")),
		)

		if verbose {
			r.Println(styles.Muted.Render("        " + rule.Description))
			if rule.Rationale != "" {
				r.Println(styles.Muted.Render("        Why: " + truncateOneLine(rule.Rationale, 80)))
			}
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'puzzlelint rules <rule-id>' for detailed documentation"))
}

func listRulesMarkdown(r *output.Renderer, rules []lint.RuleInfo, verbose bool) {
	r.Println(output.FormatHeader(1, "Consistency Rules"))
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println("")
			r.Println(output.FormatHeader(2, output.Title(currentGroup)))
			r.Println("")
		}

		r.Printf("- **%s** - %s (`%s`, %s)\n", rule.ID, rule.Name, rule.DefaultSeverity, strings.Join(rule.Files, ", "))
		if verbose {
			r.Println("  " + rule.Description)
			if rule.Rationale != "" {
				r.Println("  > " + truncateOneLine(rule.Rationale, 200))
			}
		}
	}
	r.Println("")
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	rule, ok := lint.GetByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := rule.Info()

	if ok, err := r.Structured(info); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		showRuleMarkdown(r, info)
		return nil
	}
	showRuleText(r, info)
	return nil
}

func showRuleText(r *output.Renderer, rule lint.RuleInfo) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.DefaultSeverity)
	r.Printf("  %s: %s\n", styles.Bold.Render("Files"), strings.Join(rule.Files, ", "))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		for _, line := range strings.Split(rule.Rationale, "\n") {
			r.Println("  " + line)
		}
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}
}

func showRuleMarkdown(r *output.Renderer, rule lint.RuleInfo) {
	fence := "kotlin"
	if rule.Target == lint.TargetPath.String() {
		fence = "text"
	}

	r.Println(output.FormatHeader(1, fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")
	r.Printf("**Group:** %s | **Severity:** `%s` | **Files:** %s\n\n", rule.Group, rule.DefaultSeverity, strings.Join(rule.Files, ", "))
	r.Println(rule.Description)
	r.Println("")

	sections := []struct {
		title, body string
		code        bool
	}{
		{"Why This Matters", rule.Rationale, false},
		{"Bad Example", rule.BadExample, true},
		{"Good Example", rule.GoodExample, true},
		{"How to Fix", rule.Fix, false},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		r.Println(output.FormatHeader(2, s.title))
		r.Println("")
		if s.code {
			r.Println("```" + fence)
			r.Println(s.body)
			r.Println("```")
		} else {
			r.Println(s.body)
		}
		r.Println("")
	}
}

// Helper functions

func getSeverityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	case lint.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
