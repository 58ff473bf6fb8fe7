package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces bursts of file events (editors often write twice).
const watchDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Re-run checks whenever puzzle files change",
		Long: `Run check once, then again each time a Kotlin file or puzzle
directory under the root changes. Stop with Ctrl-C.

Takes the same flags as check. Failing checks do not stop the watch.`,
		Example: `  # Watch the configured puzzles directory
  puzzlelint watch

  # Watch only the solution rule
  puzzlelint watch --rule SL01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	addCheckFlags(cmd, opts)
	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdCtx := NewCommandContext(cmd, opts.Format)
	root, err := cmdCtx.PuzzlesRoot(args)
	if err != nil {
		return err
	}

	check := func(ctx context.Context) {
		run, threshold, err := runCheck(ctx, cmdCtx, []string{root}, opts)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				cmdCtx.Renderer.Error(err.Error())
			}
			return
		}
		if err := renderReport(cmdCtx.Renderer, run, threshold); err != nil {
			cmdCtx.Logger.Error("failed to render report", "error", err)
		}
	}

	check(ctx)
	cmdCtx.Renderer.Println(cmdCtx.Renderer.Styles().Muted.Render(fmt.Sprintf("Watching %s for changes...", root)))

	w := &watcher{
		root:     root,
		debounce: watchDebounce,
		logger:   cmdCtx.Logger,
		onChange: check,
	}
	return w.run(ctx)
}

// watcher re-runs onChange after file system activity under root settles.
type watcher struct {
	root     string
	debounce time.Duration
	logger   *slog.Logger
	onChange func(ctx context.Context)
}

// run blocks until ctx is done. onChange always runs on the calling
// goroutine, so renders never interleave.
func (w *watcher) run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := watchDirRecursive(fsw, w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}

	// Debounce timer, stopped until the first event arrives.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("file changed", "file", event.Name, "op", event.Op.String())

			// New puzzle directories need watching too.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchDirRecursive(fsw, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.onChange(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// relevant keeps Kotlin sources and directories (which have no extension).
func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	ext := filepath.Ext(event.Name)
	return ext == ".kt" || ext == ""
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
// Hidden directories are skipped.
func watchDirRecursive(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
