package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
	"github.com/leapstack-labs/puzzlelint/pkg/source"
)

// skipReasonMissing marks file rules whose target file does not exist.
// The missing file itself is reported by the required-file rule.
const skipReasonMissing = "required file missing"

// Invocation is one concrete rule execution against one required file.
type Invocation struct {
	Rule RuleDef
	Dir  puzzle.Directory
	Role puzzle.Role
	Path string
}

// Analyzer runs registered rules against puzzle directories.
type Analyzer struct {
	config *Config
	parser source.Parser
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil config enables every rule and a nil
// logger discards output.
func NewAnalyzer(config *Config, parser source.Parser, logger *slog.Logger) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{
		config: config,
		parser: parser,
		logger: logger,
	}
}

// Rules returns the enabled rules, sorted by ID.
func (a *Analyzer) Rules() []RuleDef {
	var enabled []RuleDef
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}
		enabled = append(enabled, rule)
	}
	return enabled
}

// Plan enumerates every (directory x rule x role) invocation up front.
// The plan is pure data: it touches neither the file system nor the parser.
func (a *Analyzer) Plan(dirs []puzzle.Directory) []Invocation {
	rules := a.Rules()
	var plan []Invocation
	for _, dir := range dirs {
		for _, rule := range rules {
			for _, role := range rule.Roles {
				plan = append(plan, Invocation{
					Rule: rule,
					Dir:  dir,
					Role: role,
					Path: dir.File(role),
				})
			}
		}
	}
	return plan
}

// Run executes the plan and returns one result per invocation, in plan order.
// Checks share no state, so they run in parallel up to the configured
// concurrency. Run only fails when ctx is cancelled.
func (a *Analyzer) Run(ctx context.Context, plan []Invocation) ([]CheckResult, error) {
	results := make([]CheckResult, len(plan))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())

	for i, inv := range plan {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.execute(inv)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Analyze plans, runs and groups results by directory.
func (a *Analyzer) Analyze(ctx context.Context, dirs []puzzle.Directory) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	plan := a.Plan(dirs)
	a.logger.Debug("running checks",
		slog.String("run_id", report.RunID),
		slog.Int("directories", len(dirs)),
		slog.Int("invocations", len(plan)))

	results, err := a.Run(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("run checks: %w", err)
	}

	index := make(map[puzzle.Directory]int, len(dirs))
	for _, dir := range dirs {
		if _, ok := index[dir]; ok {
			continue
		}
		index[dir] = len(report.Directories)
		report.Directories = append(report.Directories, DirectoryReport{Dir: dir})
	}
	for _, res := range results {
		i := index[res.Dir]
		report.Directories[i].Results = append(report.Directories[i].Results, res)
	}

	report.FinishedAt = time.Now()
	a.logger.Debug("checks finished",
		slog.String("run_id", report.RunID),
		slog.Duration("elapsed", report.Duration()))
	return report, nil
}

// execute runs a single invocation.
func (a *Analyzer) execute(inv Invocation) CheckResult {
	rule := inv.Rule
	res := CheckResult{
		RuleID:   rule.ID,
		Dir:      inv.Dir,
		Role:     inv.Role,
		Path:     inv.Path,
		Severity: a.config.GetSeverity(rule.ID, rule.Severity),
	}

	switch rule.Target {
	case TargetPath:
		res.Err = rule.CheckPath(inv.Path)

	case TargetFile:
		if !isRegularFile(inv.Path) {
			res.Skipped = true
			res.SkipReason = skipReasonMissing
			break
		}
		if a.parser == nil {
			res.Err = &ParseError{Path: inv.Path, Err: errors.New("no parser configured")}
			break
		}
		f, err := a.parser.ParseFile(inv.Path)
		if err != nil {
			res.Err = &ParseError{Path: inv.Path, Err: err}
			break
		}
		res.Err = rule.CheckFile(f)
	}

	if res.Err != nil {
		a.logger.Debug("check failed",
			slog.String("rule", rule.ID),
			slog.String("path", inv.Path),
			slog.String("error", res.Err.Error()))
	}
	return res
}

func (a *Analyzer) concurrency() int {
	if a.config.Concurrency > 0 {
		return a.config.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
