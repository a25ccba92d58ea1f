package query

import (
	"context"
	"errors"
	"sort"

	"github.com/harrison/codelens/internal/semantic"
	"github.com/harrison/codelens/internal/store"
)

// rrfK is the Reciprocal Rank Fusion constant: a result at 0-based rank r
// contributes 1/(rrfK+r+1) to its path's fused score.
const rrfK = 60

// HybridPlanner fuses the Full-Text Planner with an externally supplied
// Semantic Planner via Reciprocal Rank Fusion. Absence or failure of the
// semantic backend degrades silently to full-text-only results.
type HybridPlanner struct {
	Storage  *store.Store
	Semantic semantic.Planner
}

func (p *HybridPlanner) Search(ctx context.Context, originalQuery string, limit int, filter Filter) ([]Result, error) {
	ft := &FullTextPlanner{Storage: p.Storage}
	fullText, err := ft.search(originalQuery, 2*limit, filter)
	if err != nil {
		return nil, err
	}

	if p.Semantic == nil {
		return truncateResults(fullText, limit), nil
	}

	semFilter := semantic.Filter{Language: filter.Language, PathSubstr: filter.PathSubstr}
	semResults, err := p.Semantic.Search(ctx, originalQuery, 2*limit, semFilter)
	if err != nil {
		if errors.Is(err, semantic.ErrUnavailable) {
			return truncateResults(fullText, limit), nil
		}
		return truncateResults(fullText, limit), nil
	}

	fused := fuse(fullText, semResults)
	if len(fused) > limit {
		fused = fused[:limit]
	}
	return fused, nil
}

type fusedEntry struct {
	path   string
	result Result
	score  float64
	order  int
}

// fuse combines full-text and semantic result lists with Reciprocal Rank
// Fusion. The surviving Result object for a path is the first-seen one
// (full-text is scanned first, so it is preferred on a tie).
func fuse(fullText []Result, semResults []semantic.Result) []Result {
	entries := map[string]*fusedEntry{}
	var order []string

	for rank, r := range fullText {
		e, ok := entries[r.Path]
		if !ok {
			e = &fusedEntry{path: r.Path, result: r, order: len(order)}
			entries[r.Path] = e
			order = append(order, r.Path)
		}
		e.score += 1.0 / float64(rrfK+rank+1)
	}

	for rank, r := range semResults {
		e, ok := entries[r.Path]
		if !ok {
			e = &fusedEntry{
				path: r.Path,
				result: Result{
					Path:       r.Path,
					Content:    truncate(r.Content, contentPreviewLimit),
					SearchType: TypeHybrid,
				},
				order: len(order),
			}
			entries[r.Path] = e
			order = append(order, r.Path)
		}
		e.score += 1.0 / float64(rrfK+rank+1)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := entries[order[i]], entries[order[j]]
		if a.score != b.score {
			return a.score > b.score
		}
		return a.order < b.order
	})

	results := make([]Result, 0, len(order))
	for _, path := range order {
		e := entries[path]
		res := e.result
		res.Score = e.score
		res.SearchType = TypeHybrid
		results = append(results, res)
	}
	return results
}

func truncateResults(results []Result, limit int) []Result {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
