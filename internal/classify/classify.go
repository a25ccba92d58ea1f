// Package classify maps a file's suffix to a language tag from a closed table.
package classify

import "strings"

// Unknown is returned for any suffix absent from the table. The scanner
// treats it as a skip signal.
const Unknown = "unknown"

// table is the closed suffix-to-language mapping.
var table = map[string]string{
	".py":     "python",
	".js":     "javascript",
	".ts":     "typescript",
	".tsx":    "typescript",
	".jsx":    "javascript",
	".java":   "java",
	".c":      "c",
	".cpp":    "cpp",
	".cc":     "cpp",
	".h":      "c",
	".hpp":    "cpp",
	".go":     "go",
	".rs":     "rust",
	".rb":     "ruby",
	".php":    "php",
	".swift":  "swift",
	".kt":     "kotlin",
	".scala":  "scala",
	".cs":     "csharp",
	".m":      "objectivec",
	".sh":     "shell",
	".bash":   "shell",
	".zsh":    "shell",
	".ps1":    "powershell",
	".sql":    "sql",
	".html":   "html",
	".css":    "css",
	".scss":   "scss",
	".less":   "less",
	".json":   "json",
	".yaml":   "yaml",
	".yml":    "yaml",
	".xml":    "xml",
	".md":     "markdown",
	".toml":   "toml",
	".ini":    "ini",
	".cfg":    "ini",
	".vue":    "vue",
	".svelte": "svelte",
}

// Classify returns the language tag for a suffix (with or without a leading
// dot, any case). Suffixes outside the table return Unknown.
func Classify(suffix string) string {
	if suffix == "" {
		return Unknown
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	lang, ok := table[strings.ToLower(suffix)]
	if !ok {
		return Unknown
	}
	return lang
}

// Known reports whether suffix classifies to anything but Unknown.
func Known(suffix string) bool {
	return Classify(suffix) != Unknown
}
