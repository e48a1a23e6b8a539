package expand

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/wfam/pkg/storage"
)

// photoTree creates
//
//	2019/Jan  2019/Feb  2019/notes.txt
//	2020/Jan
//	Misc/Jan
func photoTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"2019/Jan", "2019/Feb", "2020/Jan", "Misc/Jan"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "2019", "notes.txt"), []byte("n"), 0644))
	return root
}

func TestNewPlan(t *testing.T) {
	tests := []struct {
		pattern string
		want    Plan
	}{
		{"/photos/", Plan{Pattern: "/photos"}},
		{"/photos", Plan{Pattern: "/photos"}},
		{"/photos/20*", Plan{Pattern: "/photos/20*", Root: "/photos", Levels: 1}},
		{"/photos/20*/", Plan{Pattern: "/photos/20*", Root: "/photos", Levels: 1}},
		{"/photos/20*/Jan", Plan{Pattern: "/photos/20*/Jan", Root: "/photos", Levels: 2}},
		{"/photos/20??/*/raw", Plan{Pattern: "/photos/20??/*/raw", Root: "/photos", Levels: 3}},
		{"/2*", Plan{Pattern: "/2*", Root: "/", Levels: 1}},
		{"20*", Plan{Pattern: "20*", Root: "", Levels: 1}},
		{"./photos/x?", Plan{Pattern: "./photos/x?", Root: "./photos", Levels: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPlan(tt.pattern))
		})
	}
}

func TestExpand_NoWildcard(t *testing.T) {
	e := NewExpander(storage.NewHost(), nil)

	got, err := e.Expand(context.Background(), "/does/not/exist/")
	require.NoError(t, err)
	assert.Equal(t, []string{"/does/not/exist"}, got, "existence is not checked without wildcards")
}

func TestExpand_Wildcards(t *testing.T) {
	root := photoTree(t)
	e := NewExpander(storage.NewHost(), nil)
	ctx := context.Background()
	p := func(parts ...string) string {
		return filepath.Join(append([]string{root}, parts...)...)
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"Star", p("20*"), []string{p("2019"), p("2020")}},
		{"TrailingSeparator", p("20*") + string(filepath.Separator), []string{p("2019"), p("2020")}},
		{"Question", p("201?"), []string{p("2019")}},
		{"SuffixAfterStar", p("*9"), []string{p("2019")}},
		{"LiteralSegmentAfterWildcard", p("20*", "Jan"), []string{p("2019", "Jan"), p("2020", "Jan")}},
		{"CaseInsensitive", p("*", "jan"), []string{p("2019", "Jan"), p("2020", "Jan"), p("Misc", "Jan")}},
		{"TwoWildcardSegments", p("20??", "F*"), []string{p("2019", "Feb")}},
		{"FilesAreNotCandidates", p("2019", "*"), []string{p("2019", "Feb"), p("2019", "Jan")}},
		{"DeeperThanTree", p("20*", "Jan", "raw"), nil},
		{"NoMatch", p("19*"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Expand(ctx, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_MissingRootIsEmpty(t *testing.T) {
	root := photoTree(t)
	e := NewExpander(storage.NewHost(), nil)

	got, err := e.Expand(context.Background(), filepath.Join(root, "missing", "20*"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_RelativeToWorkingDirectory(t *testing.T) {
	root := photoTree(t)
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	defer os.Chdir(oldWd)

	e := NewExpander(storage.NewHost(), nil)

	got, err := e.Expand(context.Background(), "20*")
	require.NoError(t, err)
	assert.Equal(t, []string{"2019", "2020"}, got)

	got, err = e.Expand(context.Background(), filepath.Join(".", "2019") + string(filepath.Separator) + "J*")
	require.NoError(t, err)
	assert.Equal(t, []string{"2019" + string(filepath.Separator) + "Jan"}, got)
}

func TestExpand_Idempotent(t *testing.T) {
	root := photoTree(t)
	e := NewExpander(storage.NewHost(), nil)
	pattern := filepath.Join(root, "*", "J*")

	first, err := e.Expand(context.Background(), pattern)
	require.NoError(t, err)
	second, err := e.Expand(context.Background(), pattern)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExpand_Cancelled(t *testing.T) {
	root := photoTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExpander(storage.NewHost(), nil).Expand(ctx, filepath.Join(root, "*"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpand_RootIsFile(t *testing.T) {
	root := photoTree(t)
	e := NewExpander(storage.NewHost(), nil)

	got, err := e.Expand(context.Background(), filepath.Join(root, "2019", "notes.txt", "*"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = e.Expand(context.Background(), filepath.Join(root, "2019", "notes.txt", "sub", "*"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// recordingBackend records the directories it is asked to enumerate
type recordingBackend struct {
	*storage.Local
	visited []string
	fail    map[string]bool
}

func (b *recordingBackend) Subdirs(ctx context.Context, dir string) ([]string, error) {
	b.visited = append(b.visited, dir)
	if b.fail[dir] {
		return nil, os.ErrPermission
	}
	return b.Local.Subdirs(ctx, dir)
}

func TestExpand_OnlyDescendsIntoMatchingSegments(t *testing.T) {
	root := photoTree(t)
	misc := filepath.Join(root, "Misc")
	backend := &recordingBackend{Local: storage.NewHost(), fail: map[string]bool{misc: true}}

	got, err := NewExpander(backend, nil).Expand(context.Background(), filepath.Join(root, "20*", "J*"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "2019", "Jan"), filepath.Join(root, "2020", "Jan")}, got)
	assert.NotContains(t, backend.visited, misc, "unreadable sibling outside the pattern is never opened")
	assert.Equal(t, []string{root, filepath.Join(root, "2019"), filepath.Join(root, "2020")}, backend.visited)
}
