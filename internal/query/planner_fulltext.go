package query

import (
	"errors"
	"math"

	"github.com/harrison/codelens/internal/store"
)

// FullTextPlanner ranks matches with the storage engine's BM25 scorer,
// falling back to substring containment when the sanitized query is
// rejected by the full-text grammar.
type FullTextPlanner struct {
	Storage *store.Store
}

func (p *FullTextPlanner) search(originalQuery string, limit int, filter Filter) ([]Result, error) {
	sanitized := Sanitize(originalQuery)

	hits, err := p.Storage.FullTextQuery(sanitized, store.Filters(filter), limit)
	if err != nil {
		if errors.Is(err, store.ErrQuerySyntax) {
			fb := &FallbackPlanner{Storage: p.Storage}
			return fb.search(originalQuery, limit, filter)
		}
		return nil, err
	}

	results := make([]Result, 0, len(hits))
	for _, h := range hits {
		line, ctx, highlights := Extract(h.Content, originalQuery)
		results = append(results, Result{
			Path:         h.Path,
			Content:      truncate(h.Content, contentPreviewLimit),
			Score:        math.Abs(h.Score),
			LineNumber:   line,
			MatchContext: ctx,
			SearchType:   TypeFullText,
			Highlights:   highlights,
		})
	}
	return results, nil
}

// Search runs the full-text planner for query under filter, returning up to
// limit ranked results.
func (p *FullTextPlanner) Search(originalQuery string, limit int, filter Filter) ([]Result, error) {
	return p.search(originalQuery, limit, filter)
}
