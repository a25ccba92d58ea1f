package store

import "errors"

// ErrQuerySyntax is returned by FullTextQuery when the FTS5 engine rejects
// the query's syntax. Callers (the full-text planner) match it with
// errors.Is to decide whether to fall back to a substring scan, rather than
// inspecting the underlying driver error's message.
var ErrQuerySyntax = errors.New("store: query syntax rejected by full-text engine")

// ErrNotFound is returned by GetStats when no statistics have been written yet.
var ErrNotFound = errors.New("store: not found")
