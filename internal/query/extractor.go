package query

import "strings"

const maxHighlights = 3
const contextRadius = 2

// Extract scans content line-by-line for a case-insensitive containment
// match of originalQuery. On the first hit it records the 1-indexed line
// number and a ±2-line context window (clamped at file boundaries);
// matching lines (trimmed) are collected as highlights, up to three. If
// nothing matches, it returns line 0, empty context, and no highlights.
func Extract(content, originalQuery string) (lineNumber int, context string, highlights []string) {
	if originalQuery == "" {
		return 0, "", nil
	}

	lines := strings.Split(content, "\n")
	needle := strings.ToLower(originalQuery)

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		if lineNumber == 0 {
			lineNumber = i + 1
			start := i - contextRadius
			if start < 0 {
				start = 0
			}
			end := i + contextRadius
			if end > len(lines)-1 {
				end = len(lines) - 1
			}
			context = strings.Join(lines[start:end+1], "\n")
		}
		highlights = append(highlights, strings.TrimSpace(line))
		if len(highlights) >= maxHighlights {
			break
		}
	}

	return lineNumber, context, highlights
}
