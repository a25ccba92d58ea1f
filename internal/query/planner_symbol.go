package query

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/harrison/codelens/internal/store"
)

// SymbolKind narrows a symbol search to one surface-syntax convention.
type SymbolKind string

const (
	KindFunction SymbolKind = "function"
	KindClass    SymbolKind = "class"
	KindVariable SymbolKind = "variable"
)

var symbolPatternTemplates = map[SymbolKind][]string{
	KindFunction: {
		`def\s+%s\s*\(`,
		`function\s+%s\s*\(`,
		`func\s+%s\s*\(`,
		`fn\s+%s\s*\(`,
	},
	KindClass: {
		`class\s+%s\s*[:(]`,
		`struct\s+%s\s*\{`,
		`interface\s+%s\s*\{`,
	},
	KindVariable: {
		`(?:const|let|var)\s+%s\s*=`,
		`%s\s*:=`,
		`(?:let|const)\s+%s\s*:`,
	},
}

var symbolKindOrder = []SymbolKind{KindFunction, KindClass, KindVariable}

// SymbolPlanner locates functions, classes, and variables by a fixed table
// of per-kind regexes rather than a real parser.
type SymbolPlanner struct {
	Storage *store.Store
}

func compiledPatterns(name string, kind SymbolKind) []*regexp.Regexp {
	escaped := regexp.QuoteMeta(name)

	var kinds []SymbolKind
	if kind == "" {
		kinds = symbolKindOrder
	} else {
		kinds = []SymbolKind{kind}
	}

	var patterns []*regexp.Regexp
	for _, k := range kinds {
		for _, tmpl := range symbolPatternTemplates[k] {
			patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(tmpl, escaped)))
		}
	}
	return patterns
}

// Search finds at most one file match per stored file: the first pattern
// that matches any text in the file wins for that file, and the file's
// score is that pattern's match count. Results are sorted by descending
// score and truncated to limit.
func (p *SymbolPlanner) Search(name string, kind SymbolKind, limit int) ([]Result, error) {
	patterns := compiledPatterns(name, kind)

	files, err := p.Storage.ReadAll()
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, f := range files {
		matches := firstMatchingPattern(patterns, f.Content)
		if matches == nil {
			continue
		}

		lines := strings.Split(f.Content, "\n")
		firstOffset := matches[0][0]
		lineIdx := lineIndexForOffset(f.Content, firstOffset)

		start := lineIdx - contextRadius
		if start < 0 {
			start = 0
		}
		end := lineIdx + contextRadius
		if end > len(lines)-1 {
			end = len(lines) - 1
		}
		context := strings.Join(lines[start:end+1], "\n")

		var highlights []string
		for i, m := range matches {
			if i >= maxHighlights {
				break
			}
			highlights = append(highlights, f.Content[m[0]:m[1]])
		}

		results = append(results, Result{
			Path:         f.Path,
			Content:      truncate(f.Content, contentPreviewLimit),
			Score:        float64(len(matches)),
			LineNumber:   lineIdx + 1,
			MatchContext: context,
			SearchType:   TypeSymbol,
			Highlights:   highlights,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// firstMatchingPattern returns the match-index slice of the first pattern
// (in order) that matches content at all, or nil if none does.
func firstMatchingPattern(patterns []*regexp.Regexp, content string) [][]int {
	for _, re := range patterns {
		if m := re.FindAllStringIndex(content, -1); m != nil {
			return m
		}
	}
	return nil
}

func lineIndexForOffset(content string, offset int) int {
	return strings.Count(content[:offset], "\n")
}
