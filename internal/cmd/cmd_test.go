package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	indexPathFlag = ""
	jsonFlag = false

	root := NewRootCommand("test")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out, err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestIndexSearchStatsClearRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "hello.py"), "def greet():\n    return \"hi\"\n")

	indexDir := filepath.Join(t.TempDir(), "index")

	_, err := runRoot(t, "index", root, "--index-path", indexDir)
	require.NoError(t, err)

	out, err := runRoot(t, "search", "greet", "--index-path", indexDir)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "hello.py")

	statsOut, err := runRoot(t, "stats", "--index-path", indexDir)
	require.NoError(t, err)
	assert.Contains(t, statsOut.String(), "Indexed 1 files")

	_, err = runRoot(t, "clear", "--force", "--index-path", indexDir)
	require.NoError(t, err)

	statsOut, err = runRoot(t, "stats", "--index-path", indexDir)
	require.NoError(t, err)
	assert.Contains(t, statsOut.String(), "not indexed")
}

func TestSearchWithoutIndexReturnsIndexMissing(t *testing.T) {
	indexDir := filepath.Join(t.TempDir(), "index")
	_, err := runRoot(t, "search", "anything", "--index-path", indexDir)
	require.Error(t, err)
	assert.True(t, IsUserFacing(err))
}

func TestIndexRejectsNonDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, file, "x")
	indexDir := filepath.Join(t.TempDir(), "index")

	_, err := runRoot(t, "index", file, "--index-path", indexDir)
	require.Error(t, err)
	assert.True(t, IsUserFacing(err))
}

func TestListFilesAndSymbolAndFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "func widget() {}\n")
	indexDir := filepath.Join(t.TempDir(), "index")

	_, err := runRoot(t, "index", root, "--index-path", indexDir)
	require.NoError(t, err)

	listOut, err := runRoot(t, "list-files", "--index-path", indexDir)
	require.NoError(t, err)
	assert.Contains(t, listOut.String(), "a.go")

	symOut, err := runRoot(t, "symbol", "widget", "--type", "function", "--index-path", indexDir)
	require.NoError(t, err)
	assert.Contains(t, symOut.String(), "a.go")

	filesOut, err := runRoot(t, "files", "*.go", "--index-path", indexDir)
	require.NoError(t, err)
	assert.Contains(t, filesOut.String(), "a.go")
}
