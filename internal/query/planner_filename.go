package query

import (
	"fmt"
	"strings"

	"github.com/harrison/codelens/internal/store"
)

// FileNamePlanner matches a shell-style glob against stored paths.
type FileNamePlanner struct {
	Storage *store.Store
}

// globToLike translates a shell-style pattern (`*` and `?` wildcards) into
// a SQL LIKE pattern wrapped for containment, escaping any literal LIKE
// metacharacters the caller's pattern did not intend as wildcards.
func globToLike(pattern string) string {
	var sb strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteRune('%')
		case '?':
			sb.WriteRune('_')
		case '%', '_':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return "%" + sb.String() + "%"
}

// Search matches pattern against stored paths and returns up to limit
// results, each summarizing content as "<N> lines, <M> bytes".
func (p *FileNamePlanner) Search(pattern string, limit int) ([]Result, error) {
	hits, err := p.Storage.FileNameQuery(globToLike(pattern), limit)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(hits))
	for _, h := range hits {
		lines := strings.Count(h.Content, "\n") + 1
		results = append(results, Result{
			Path:       h.Path,
			Content:    fmt.Sprintf("%d lines, %d bytes", lines, len(h.Content)),
			Score:      1.0,
			SearchType: TypeFile,
		})
	}
	return results, nil
}
