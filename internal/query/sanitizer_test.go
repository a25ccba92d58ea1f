package query

import "testing"

func TestSanitizePhraseQuery(t *testing.T) {
	got := Sanitize("total count")
	want := `"total count"`
	if got != want {
		t.Errorf("Sanitize(%q) = %q, want %q", "total count", got, want)
	}
}

func TestSanitizeDoublesEmbeddedQuotes(t *testing.T) {
	got := Sanitize(`say "hi" now`)
	want := `"say ""hi"" now"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSanitizeAlreadyQuotedPhraseIsNotRewrapped(t *testing.T) {
	got := Sanitize(`"already quoted"`)
	if got != "already quoted" {
		t.Errorf("got %q", got)
	}
}

func TestSanitizeStripsReservedCharsWithoutWhitespace(t *testing.T) {
	got := Sanitize("(")
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestSanitizeBagOfWordsCollapsesReservedChars(t *testing.T) {
	got := Sanitize("foo*bar")
	if got != "foo bar" {
		t.Errorf("got %q", got)
	}
}
