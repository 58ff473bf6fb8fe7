package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleFile() *File {
	return &File{
		Path: "challenge.kt",
		Decls: []Declaration{
			{Kind: KindFunction, Name: "twoSum", Pos: Position{Line: 3, Column: 1}},
			{
				Kind: KindClass,
				Name: "Test",
				Pos:  Position{Line: 7, Column: 1},
				Members: []Declaration{
					{Kind: KindFunction, Name: "nested"},
					{Kind: KindObject, Name: "SolutionInner"},
				},
			},
			{Kind: KindObject, Name: "SolutionA", Pos: Position{Line: 12, Column: 1}},
			{Kind: KindFunction, Name: "helper", Pos: Position{Line: 15, Column: 1}},
		},
	}
}

func TestFile_TopLevel(t *testing.T) {
	f := sampleFile()

	tests := []struct {
		kind Kind
		want []string
	}{
		{KindFunction, []string{"twoSum", "helper"}},
		{KindClass, []string{"Test"}},
		{KindObject, []string{"SolutionA"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var got []string
			for d := range f.TopLevel(tt.kind) {
				got = append(got, d.Name)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TopLevel(%s) mismatch (-want +got):\n%s", tt.kind, diff)
			}
		})
	}
}

func TestFile_TopLevelIgnoresMembers(t *testing.T) {
	f := sampleFile()

	// "nested" and "SolutionInner" live inside Test and must not surface.
	assert.Equal(t, 2, f.Count(KindFunction))
	assert.Equal(t, 1, f.Count(KindObject))
}

func TestFile_TopLevelRestartable(t *testing.T) {
	f := sampleFile()
	seq := f.TopLevel(KindFunction)

	first := Collect(seq)
	second := Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("sequence not restartable (-first +second):\n%s", diff)
	}
}

func TestFile_TopLevelEarlyStop(t *testing.T) {
	f := sampleFile()

	n := 0
	for range f.TopLevel(KindFunction) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestFile_NilFile(t *testing.T) {
	var f *File
	assert.Equal(t, 0, f.Count(KindClass))
}

func TestFilter(t *testing.T) {
	f := sampleFile()

	tests := Collect(Filter(f.TopLevel(KindClass), NamedExactly("Test")))
	assert.Len(t, tests, 1)

	none := Collect(Filter(f.TopLevel(KindClass), NamedExactly("Tests")))
	assert.Empty(t, none)
}

func TestDeclaration_HasNamePrefix(t *testing.T) {
	tests := []struct {
		name   string
		decl   Declaration
		prefix string
		want   bool
	}{
		{"match", Declaration{Name: "SolutionBruteForce"}, "Solution", true},
		{"exact", Declaration{Name: "Solution"}, "Solution", true},
		{"suffix only", Declaration{Name: "MySolution"}, "Solution", false},
		{"case sensitive", Declaration{Name: "solutionFast"}, "Solution", false},
		{"absent name", Declaration{}, "Solution", false},
		{"absent name empty prefix", Declaration{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.decl.HasNamePrefix(tt.prefix))
		})
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "-", Position{}.String())
	assert.Equal(t, "4:2", Position{Line: 4, Column: 2}.String())
}
