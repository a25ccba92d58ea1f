// Package ignore evaluates paths against glob patterns covering file names,
// relative paths, and ancestor directory components.
package ignore

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Default is the fixed set of patterns applied unless the caller extends it.
// It mirrors common dependency directories, build outputs, editor metadata,
// compiled artifacts, lockfiles, and minified assets.
var Default = []string{
	"node_modules",
	"__pycache__",
	".git",
	".svn",
	".hg",
	"venv",
	".venv",
	"env",
	".env",
	"dist",
	"build",
	"target",
	".idea",
	".vscode",
	"*.pyc",
	"*.pyo",
	"*.class",
	"*.o",
	"*.so",
	"*.dll",
	"*.exe",
	"*.min.js",
	"*.min.css",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Cargo.lock",
	"*.map",
}

// Matcher evaluates paths against a fixed list of glob patterns.
type Matcher struct {
	patterns []string
}

// New builds a Matcher from Default plus any caller-supplied additions.
func New(extra []string) *Matcher {
	patterns := make([]string, 0, len(Default)+len(extra))
	patterns = append(patterns, Default...)
	patterns = append(patterns, extra...)
	return &Matcher{patterns: patterns}
}

// Ignored reports whether path (absolute, or any path under root) should be
// excluded from indexing. It tests, in order: the file name against every
// pattern, the root-relative path against every pattern, and every ancestor
// directory segment of the relative path (both as a glob and as an exact
// string) against every pattern.
func (m *Matcher) Ignored(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	name := filepath.Base(rel)

	for _, pattern := range m.patterns {
		if matches(pattern, name) {
			return true
		}
		if matches(pattern, rel) {
			return true
		}
		for _, segment := range ancestors(rel) {
			if segment == pattern || matches(pattern, segment) {
				return true
			}
		}
	}
	return false
}

// ancestors returns every individual directory name in a slash-separated
// relative path (e.g. "a/b/c.go" -> ["a", "b"]), so a pattern like
// "node_modules" excludes it at any depth, not only at the indexing root.
func ancestors(rel string) []string {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." || dir == "" {
		return nil
	}
	return strings.Split(dir, "/")
}

func matches(pattern, candidate string) bool {
	ok, err := doublestar.Match(pattern, candidate)
	if err != nil {
		return false
	}
	return ok
}
