package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harrison/codelens/internal/config"
	"github.com/harrison/codelens/internal/ignore"
	"github.com/harrison/codelens/internal/query"
	"github.com/harrison/codelens/internal/store"
)

// resolveIndexPath returns the effective index directory: the --index-path
// flag if set, else the config file's index_path, else the built-in
// default.
func resolveIndexPath() (string, error) {
	if indexPathFlag != "" {
		return indexPathFlag, nil
	}
	cfg, err := config.LoadFromDir(".")
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.IndexPath, nil
}

// resolveIgnorePatterns merges --ignore flags (additive) with any patterns
// named in the config file, on top of the built-in default set.
func resolveIgnorePatterns(extra []string) (*ignore.Matcher, error) {
	cfg, err := config.LoadFromDir(".")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	patterns := append(append([]string{}, cfg.IgnorePatterns...), extra...)
	return ignore.New(patterns), nil
}

// openExistingStore opens the store at the resolved index path, returning
// ErrIndexMissing rather than silently creating an empty index, for
// read-only commands that require a prior `index` run.
func openExistingStore() (*store.Store, error) {
	indexPath, err := resolveIndexPath()
	if err != nil {
		return nil, err
	}
	if !store.Exists(indexPath) {
		return nil, ErrIndexMissing
	}
	return store.Open(indexPath)
}

var (
	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// printResults renders search results as colorized text, or as a JSON
// array when --json is set.
func printResults(w io.Writer, results []query.Result) error {
	if jsonFlag {
		return writeJSON(w, results)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No results.")
		return nil
	}
	for _, r := range results {
		cyan.Fprintf(w, "%s", r.Path)
		fmt.Fprintf(w, " ")
		yellow.Fprintf(w, "(%s, score=%.3f", r.SearchType, r.Score)
		if r.LineNumber > 0 {
			fmt.Fprintf(w, ", line=%d", r.LineNumber)
		}
		yellow.Fprintf(w, ")\n")
		for _, h := range r.Highlights {
			green.Fprintf(w, "  %s\n", h)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
