// Package scan walks a directory tree and yields indexable file paths.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/harrison/codelens/internal/classify"
	"github.com/harrison/codelens/internal/ignore"
)

// ScanError is returned when the root path is not a directory.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// File is one eligible entry discovered under the indexing root.
type File struct {
	// AbsPath is the absolute filesystem path.
	AbsPath string
	// RelPath is the path relative to root, using forward slashes.
	RelPath string
}

// Scan walks root recursively and returns every regular file whose suffix
// classifies to a known language tag and whose path is not ignored by m.
// Order is unspecified but stable within a single call (lexicographic by
// relative path).
func Scan(root string, m *ignore.Matcher) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &ScanError{Root: root, Err: fmt.Errorf("not a directory")}
	}

	var files []File
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			if m.Ignored(path, root) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if m.Ignored(path, root) {
			return nil
		}
		if !classify.Known(filepath.Ext(path)) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, File{
			AbsPath: path,
			RelPath: filepath.ToSlash(rel),
		})
		return nil
	})
	if walkErr != nil {
		return nil, &ScanError{Root: root, Err: walkErr}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}
