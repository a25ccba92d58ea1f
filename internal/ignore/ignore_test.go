package ignore

import "testing"

func TestIgnoredDefaultPatterns(t *testing.T) {
	m := New(nil)
	root := "/repo"

	cases := map[string]bool{
		"/repo/node_modules/foo/bar.js": true,
		"/repo/a/node_modules/b/c.js":   true,
		"/repo/src/main.go":             false,
		"/repo/vendor/lib.min.js":       true,
		"/repo/build/out.o":             true,
		"/repo/package-lock.json":       true,
		"/repo/.git/HEAD":               true,
	}

	for path, want := range cases {
		if got := m.Ignored(path, root); got != want {
			t.Errorf("Ignored(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestIgnoredCustomAdditions(t *testing.T) {
	m := New([]string{"*.secret"})
	if !m.Ignored("/repo/creds.secret", "/repo") {
		t.Error("expected custom pattern to be ignored")
	}
	if m.Ignored("/repo/main.go", "/repo") {
		t.Error("unrelated file should not be ignored")
	}
}

func TestIgnoredDoesNotDropDefaults(t *testing.T) {
	m := New([]string{"*.secret"})
	if !m.Ignored("/repo/node_modules/x.js", "/repo") {
		t.Error("custom patterns should be additive, not replace defaults")
	}
}
