package query

import "strings"

// reservedChars are the characters the full-text grammar reserves for
// operators; a bag-of-words query strips all of them.
const reservedChars = `*"'()-+:^~`

// Sanitize rewrites a user query into the subset of the full-text grammar
// guaranteed not to raise a syntax error. A query containing whitespace and
// not already phrase-quoted becomes a phrase query (embedded quotes
// doubled); otherwise reserved operator characters are stripped and
// consecutive whitespace collapses into single spaces.
func Sanitize(userQuery string) string {
	if strings.ContainsAny(userQuery, " \t\n\r") && !strings.HasPrefix(userQuery, `"`) {
		doubled := strings.ReplaceAll(userQuery, `"`, `""`)
		return `"` + doubled + `"`
	}

	var sb strings.Builder
	lastWasSpace := false
	for _, r := range userQuery {
		if strings.ContainsRune(reservedChars, r) {
			r = ' '
		}
		if r == ' ' {
			if lastWasSpace {
				continue
			}
			lastWasSpace = true
		} else {
			lastWasSpace = false
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}
