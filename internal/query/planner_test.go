package query

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/harrison/codelens/internal/semantic"
	"github.com/harrison/codelens/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "index"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func put(t *testing.T, s *store.Store, path, content, language string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, s.Upsert(store.FileRecord{
		Path: path, Content: content, Language: language,
		Size: int64(len(content)), LastModified: now, ContentHash: path, IndexedAt: now,
	}))
}

func TestFullTextPlannerRanksAndExtracts(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "a.py", "def greet():\n    return \"hi\"\n", "python")

	p := &FullTextPlanner{Storage: s}
	results, err := p.Search("greet", 10, Filter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, TypeFullText, results[0].SearchType)
	assert.Equal(t, 1, results[0].LineNumber)
	assert.Equal(t, []string{"def greet():"}, results[0].Highlights)
}

func TestFullTextPlannerPhraseQueryIsExact(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "a.py", "total count = 1\n", "python")
	put(t, s, "b.py", "count total = 2\n", "python")

	p := &FullTextPlanner{Storage: s}
	results, err := p.Search("total count", 10, Filter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a.py", results[0].Path)
}

func TestFullTextPlannerFallsBackOnSyntaxError(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "a.py", "some (parenthesized) text\n", "python")

	p := &FullTextPlanner{Storage: s}
	results, err := p.Search("(", 10, Filter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, TypeFullText, results[0].SearchType)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestSymbolPlannerFindsFunctionDefinition(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "a.py", "def greet():\n    return \"hi\"\n", "python")

	p := &SymbolPlanner{Storage: s}
	results, err := p.Search("greet", KindFunction, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].LineNumber)
	assert.Equal(t, TypeSymbol, results[0].SearchType)
}

func TestSymbolPlannerSortsByMatchCount(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "a.go", "func widget() {}\n", "go")
	put(t, s, "b.go", "func widget() {}\nfunc widget() {}\n", "go")

	p := &SymbolPlanner{Storage: s}
	results, err := p.Search("widget", KindFunction, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "b.go", results[0].Path)
}

func TestFileNamePlannerTranslatesGlob(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "internal/store/store.go", "package store\n", "go")
	put(t, s, "internal/scan/scan.go", "package scan\n", "go")

	p := &FileNamePlanner{Storage: s}
	results, err := p.Search("*store*", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "internal/store/store.go", results[0].Path)
	assert.Equal(t, TypeFile, results[0].SearchType)
}

type stubSemantic struct {
	results []semantic.Result
	err     error
}

func (s stubSemantic) Search(ctx context.Context, query string, limit int, filter semantic.Filter) ([]semantic.Result, error) {
	return s.results, s.err
}

func TestHybridPlannerDegradesWithoutSemanticBackend(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "a.py", "widget widget\n", "python")
	put(t, s, "b.py", "widget\n", "python")

	p := &HybridPlanner{Storage: s, Semantic: nil}
	results, err := p.Search(context.Background(), "widget", 2, Filter{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, TypeFullText, results[0].SearchType)
}

func TestHybridPlannerDegradesOnUnavailableSemantic(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "a.py", "widget\n", "python")

	p := &HybridPlanner{Storage: s, Semantic: semantic.Unavailable{}}
	results, err := p.Search(context.Background(), "widget", 1, Filter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestHybridPlannerFusesRanks(t *testing.T) {
	s := newTestStore(t)
	put(t, s, "a.py", "widget\n", "python")
	put(t, s, "b.py", "widget widget\n", "python")

	sem := stubSemantic{results: []semantic.Result{
		{Path: "a.py", Content: "widget\n", Score: 0.9},
	}}

	p := &HybridPlanner{Storage: s, Semantic: sem}
	results, err := p.Search(context.Background(), "widget", 2, Filter{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, TypeHybrid, r.SearchType)
	}
}
