// Package discovery finds puzzle directories beneath a root path.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
)

// DefaultDepth places puzzles directly below the root.
const DefaultDepth = 1

// ErrNotDirectory is returned when the root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Options tunes which directories count as puzzles.
type Options struct {
	// Depth is how many levels below root puzzle directories sit.
	// Zero or less means DefaultDepth.
	Depth int

	// Exclude holds glob patterns (path.Match syntax). A directory is skipped,
	// along with everything beneath it, when a pattern matches its base name
	// or its slash-separated path relative to root.
	Exclude []string

	// IncludeHidden keeps directories whose name starts with a dot.
	IncludeHidden bool

	Logger *slog.Logger
}

// List returns the puzzle directories under root in lexical order.
// Every directory exactly Depth levels below root is a puzzle; nothing is
// inferred from its contents, so a puzzle missing all of its files is still
// listed and reported.
func List(root string, opts Options) ([]puzzle.Directory, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	depth := opts.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	for _, pattern := range opts.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("puzzles root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("puzzles root %s: %w", root, ErrNotDirectory)
	}

	logger.Debug("discovering puzzles", "root", root, "depth", depth)

	var dirs []puzzle.Directory
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if skip(d.Name(), filepath.ToSlash(rel), opts) {
			logger.Debug("skipping directory", "path", path)
			return filepath.SkipDir
		}

		level := strings.Count(filepath.ToSlash(rel), "/") + 1
		if level < depth {
			return nil
		}
		dirs = append(dirs, puzzle.Directory(path))
		return filepath.SkipDir
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.Sort(dirs)
	logger.Debug("discovered puzzles", "count", len(dirs))
	return dirs, nil
}

func skip(name, rel string, opts Options) bool {
	if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, pattern := range opts.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
