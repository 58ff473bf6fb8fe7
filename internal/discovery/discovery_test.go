package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/puzzlelint/internal/testutil"
	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
)

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(p)), 0o755))
	}
}

func rel(t *testing.T, root string, dirs []puzzle.Directory) []string {
	t.Helper()
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		r, err := filepath.Rel(root, d.Path())
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestList(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"two-sum", "valid-anagram", "binary-search",
		".git/objects", "build/tmp",
		"easy/fizz-buzz", "hard/n-queens", "hard/.draft",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# puzzles\n"), 0o644))

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "default depth",
			want: []string{"binary-search", "build", "easy", "hard", "two-sum", "valid-anagram"},
		},
		{
			name: "exclude by name",
			opts: Options{Exclude: []string{"build", "easy", "hard"}},
			want: []string{"binary-search", "two-sum", "valid-anagram"},
		},
		{
			name: "depth two",
			opts: Options{Depth: 2},
			want: []string{"build/tmp", "easy/fizz-buzz", "hard/n-queens"},
		},
		{
			name: "exclude by relative path",
			opts: Options{Depth: 2, Exclude: []string{"hard/*"}},
			want: []string{"build/tmp", "easy/fizz-buzz"},
		},
		{
			name: "hidden included",
			opts: Options{Depth: 2, IncludeHidden: true},
			want: []string{".git/objects", "build/tmp", "easy/fizz-buzz", "hard/.draft", "hard/n-queens"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = testutil.NewTestLogger(t)
			dirs, err := List(root, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, root, dirs))
		})
	}
}

func TestList_Errors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := List(filepath.Join(root, "missing"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = List(file, Options{})
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = List(root, Options{Exclude: []string{"[unterminated"}})
	assert.Error(t, err)
}

func TestList_Empty(t *testing.T) {
	dirs, err := List(t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, dirs)
}
