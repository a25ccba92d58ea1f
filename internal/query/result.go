// Package query implements the multi-mode search engine: sanitization,
// match-context extraction, and the full-text, fallback, symbol, file-name,
// and hybrid planners dispatched from a single entry point.
package query

import "unicode/utf8"

// SearchType enumerates the closed set of planners a Result can come from.
type SearchType string

const (
	TypeFullText SearchType = "fulltext"
	TypeSymbol   SearchType = "symbol"
	TypeFile     SearchType = "file"
	TypeHybrid   SearchType = "hybrid"
)

// Result is one ranked hit, shaped for direct JSON serialization by the CLI.
type Result struct {
	Path         string     `json:"path"`
	Content      string     `json:"content"`
	Score        float64    `json:"score"`
	LineNumber   int        `json:"line_number"`
	MatchContext string     `json:"match_context"`
	SearchType   SearchType `json:"search_type"`
	Highlights   []string   `json:"highlights"`
}

// Filter narrows a search by language and/or path substring. Empty fields
// impose no constraint.
type Filter struct {
	Language   string
	PathSubstr string
}

const contentPreviewLimit = 500

// truncate cuts content to at most limit runes, never splitting a multibyte
// character.
func truncate(content string, limit int) string {
	if utf8.RuneCountInString(content) <= limit {
		return content
	}
	runes := []rune(content)
	return string(runes[:limit])
}
