package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/codelens/internal/ignore"
	"github.com/harrison/codelens/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndexer(t *testing.T) (*Indexer, *store.Store) {
	t.Helper()
	indexPath := filepath.Join(t.TempDir(), "index")
	s, err := store.Open(indexPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s, indexPath, ignore.New(nil), nil), s
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestIndexRejectsNonDirectory(t *testing.T) {
	ix, _ := newTestIndexer(t)
	root := t.TempDir()
	file := filepath.Join(root, "a.txt")
	writeFile(t, file, "x")

	_, err := ix.Index(file)
	assert.True(t, errors.Is(err, ErrNotADirectory))
}

func TestIndexUpsertsAndComputesStats(t *testing.T) {
	ix, s := newTestIndexer(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package main\n\nfunc main() {}\n")
	writeFile(t, filepath.Join(root, "b.py"), "x = 1\ny = 2\n")

	stats, err := ix.Index(root)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFiles)
	assert.Equal(t, 1, stats.Languages["go"])
	assert.Equal(t, 1, stats.Languages["python"])
	assert.Equal(t, store.IndexVersion, stats.IndexVersion)

	paths, err := s.Enumerate("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.go", "b.py"}, paths)

	persisted, err := s.GetStats()
	require.NoError(t, err)
	assert.Equal(t, stats.TotalFiles, persisted.TotalFiles)
}

func TestIndexIsIdempotentOnUnchangedTree(t *testing.T) {
	ix, _ := newTestIndexer(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package main\n")

	first, err := ix.Index(root)
	require.NoError(t, err)

	second, err := ix.Index(root)
	require.NoError(t, err)

	assert.Equal(t, first.TotalFiles, second.TotalFiles)
	assert.Equal(t, first.TotalLines, second.TotalLines)
	assert.Equal(t, first.TotalSize, second.TotalSize)
	assert.Equal(t, first.Languages, second.Languages)
}

func TestIndexSkipsUnchangedFileOnSecondPass(t *testing.T) {
	ix, s := newTestIndexer(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package main\n")

	_, err := ix.Index(root)
	require.NoError(t, err)

	before, err := s.LookupFingerprint("a.go")
	require.NoError(t, err)

	_, err = ix.Index(root)
	require.NoError(t, err)

	after, err := s.LookupFingerprint("a.go")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestIndexUpdatesChangedFile(t *testing.T) {
	ix, s := newTestIndexer(t)
	root := t.TempDir()
	path := filepath.Join(root, "a.go")
	writeFile(t, path, "package main\n")

	_, err := ix.Index(root)
	require.NoError(t, err)

	writeFile(t, path, "package main\n\nfunc main() {}\n")

	_, err = ix.Index(root)
	require.NoError(t, err)

	hits, err := s.SubstringQuery("func main", store.Filters{}, 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestReconcileRemovesDeletedFiles(t *testing.T) {
	ix, s := newTestIndexer(t)
	root := t.TempDir()
	path := filepath.Join(root, "a.go")
	writeFile(t, path, "package main\n")

	_, err := ix.Index(root)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	removed, err := ix.Reconcile(root)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	paths, err := s.Enumerate("")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestClearWipesIndex(t *testing.T) {
	ix, s := newTestIndexer(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package main\n")

	_, err := ix.Index(root)
	require.NoError(t, err)

	require.NoError(t, ix.Clear())

	paths, err := s.Enumerate("")
	require.NoError(t, err)
	assert.Empty(t, paths)
}
