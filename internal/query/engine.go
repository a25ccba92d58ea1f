package query

import (
	"context"
	"fmt"

	"github.com/harrison/codelens/internal/semantic"
	"github.com/harrison/codelens/internal/store"
)

// Mode selects which planner handles a Request.
type Mode string

const (
	ModeFullText Mode = "fulltext"
	ModeSemantic Mode = "semantic"
	ModeHybrid   Mode = "hybrid"
)

// Request is the input to Search. Symbol and file-name search have their
// own entry points (SearchSymbol, SearchFiles) since their arguments don't
// fit a free-text query shape.
type Request struct {
	Mode   Mode
	Query  string
	Limit  int
	Filter Filter
}

// Engine is the one public search entry point; Search dispatches to the
// full-text or hybrid planner (or the semantic backend) by mode, and
// SearchSymbol/SearchFiles run the symbol and file-name planners.
type Engine struct {
	storage  *store.Store
	semantic semantic.Planner
}

// New returns an Engine reading from storage. sem may be nil; hybrid mode
// then degrades to full-text only.
func New(storage *store.Store, sem semantic.Planner) *Engine {
	return &Engine{storage: storage, semantic: sem}
}

// semanticUnavailableNotice is the one-line message surfaced to the caller
// when pure semantic mode degrades to full-text.
const semanticUnavailableNotice = "semantic backend unavailable; showing full-text results"

// Search runs req.Query through the requested planner. The returned notice
// is non-empty only when a mode degraded in a way the caller should report
// (currently: pure semantic mode falling back to full-text); hybrid mode
// degrades silently, matching its own fusion contract.
func (e *Engine) Search(ctx context.Context, req Request) ([]Result, string, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}

	switch req.Mode {
	case "", ModeFullText:
		ft := &FullTextPlanner{Storage: e.storage}
		results, err := ft.Search(req.Query, req.Limit, req.Filter)
		return results, "", err
	case ModeSemantic:
		return e.searchSemanticOnly(ctx, req)
	case ModeHybrid:
		h := &HybridPlanner{Storage: e.storage, Semantic: e.semantic}
		results, err := h.Search(ctx, req.Query, req.Limit, req.Filter)
		return results, "", err
	default:
		return nil, "", fmt.Errorf("query: unknown mode %q", req.Mode)
	}
}

// searchSemanticOnly runs the semantic backend alone, degrading to
// full-text with a notice (not an error) when the backend is unavailable.
func (e *Engine) searchSemanticOnly(ctx context.Context, req Request) ([]Result, string, error) {
	if e.semantic == nil {
		ft := &FullTextPlanner{Storage: e.storage}
		results, err := ft.Search(req.Query, req.Limit, req.Filter)
		return results, semanticUnavailableNotice, err
	}

	semFilter := semantic.Filter{Language: req.Filter.Language, PathSubstr: req.Filter.PathSubstr}
	semResults, err := e.semantic.Search(ctx, req.Query, req.Limit, semFilter)
	if err != nil {
		ft := &FullTextPlanner{Storage: e.storage}
		results, ftErr := ft.Search(req.Query, req.Limit, req.Filter)
		return results, semanticUnavailableNotice, ftErr
	}

	results := make([]Result, 0, len(semResults))
	for _, r := range semResults {
		results = append(results, Result{
			Path:       r.Path,
			Content:    truncate(r.Content, contentPreviewLimit),
			Score:      r.Score,
			SearchType: TypeFullText,
		})
	}
	return results, "", nil
}

// SearchSymbol runs the symbol planner directly (not reachable through
// Request/Mode since symbol search has its own argument shape: a name and
// an optional kind rather than a free-text query).
func (e *Engine) SearchSymbol(name string, kind SymbolKind, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	sp := &SymbolPlanner{Storage: e.storage}
	return sp.Search(name, kind, limit)
}

// SearchFiles runs the file-name planner directly.
func (e *Engine) SearchFiles(pattern string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	fp := &FileNamePlanner{Storage: e.storage}
	return fp.Search(pattern, limit)
}
