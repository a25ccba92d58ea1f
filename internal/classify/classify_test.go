package classify

import "testing"

func TestClassifyKnownSuffixes(t *testing.T) {
	cases := map[string]string{
		".py":   "python",
		".PY":   "python",
		"go":    "go",
		".tsx":  "typescript",
		".yml":  "yaml",
		".h":    "c",
		".hpp":  "cpp",
		".zsh":  "shell",
	}
	for suffix, want := range cases {
		if got := Classify(suffix); got != want {
			t.Errorf("Classify(%q) = %q, want %q", suffix, got, want)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, suffix := range []string{"", ".exe", ".foo", ".bin"} {
		if got := Classify(suffix); got != Unknown {
			t.Errorf("Classify(%q) = %q, want %q", suffix, got, Unknown)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known(".go") {
		t.Error("Known(\".go\") should be true")
	}
	if Known(".exe") {
		t.Error("Known(\".exe\") should be false")
	}
}
