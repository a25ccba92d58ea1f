// Package semantic defines the optional embedding-backed search backend
// consumed by the hybrid planner. No implementation ships in this module;
// callers that do not wire one get ErrUnavailable and degrade to full-text.
package semantic

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by Search when no semantic backend is
// installed, or by a concrete Planner when its backend failed to load.
var ErrUnavailable = errors.New("semantic: backend unavailable")

// Result is one semantic match, ordered by the backend's own relevance
// scoring before rank fusion looks at it.
type Result struct {
	Path     string
	Content  string
	Language string
	Score    float64
}

// Filter narrows a semantic search the same way store.Filters narrows a
// full-text one.
type Filter struct {
	Language   string
	PathSubstr string
}

// Planner is the interface the hybrid planner calls. Implementations live
// outside this module (an embedding index, a vector store client); none is
// required for the core full-text and symbol search paths to function.
type Planner interface {
	Search(ctx context.Context, query string, limit int, filter Filter) ([]Result, error)
}

// Unavailable is a Planner that always reports ErrUnavailable, used as the
// default when no semantic backend is configured.
type Unavailable struct{}

// Search always returns ErrUnavailable.
func (Unavailable) Search(ctx context.Context, query string, limit int, filter Filter) ([]Result, error) {
	return nil, ErrUnavailable
}
