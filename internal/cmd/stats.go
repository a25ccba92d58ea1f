package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/harrison/codelens/internal/store"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for the current index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openExistingStore()
			if err != nil {
				if errors.Is(err, ErrIndexMissing) {
					fmt.Fprintln(cmd.OutOrStdout(), "not indexed")
					return nil
				}
				return err
			}
			defer s.Close()

			stats, err := s.GetStats()
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "not indexed")
					return nil
				}
				return err
			}

			return printStats(cmd.OutOrStdout(), stats)
		},
	}
}

func printStats(w io.Writer, stats store.IndexStats) error {
	if jsonFlag {
		return writeJSON(w, stats)
	}

	cyan.Fprintf(w, "Indexed %d files\n", stats.TotalFiles)
	fmt.Fprintf(w, "  lines: %d\n", stats.TotalLines)
	fmt.Fprintf(w, "  size:  %d bytes\n", stats.TotalSize)
	fmt.Fprintf(w, "  index version: %s\n", stats.IndexVersion)
	if stats.RunID != "" {
		fmt.Fprintf(w, "  run id: %s\n", stats.RunID)
	}

	if len(stats.Languages) > 0 {
		fmt.Fprintln(w, "  languages:")
		langs := make([]string, 0, len(stats.Languages))
		for lang := range stats.Languages {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			fmt.Fprintf(w, "    %-12s %d\n", lang, stats.Languages[lang])
		}
	}
	return nil
}
