package cmd

import (
	"context"

	"github.com/harrison/codelens/internal/query"
	"github.com/harrison/codelens/internal/semantic"
	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	var (
		limit    int
		language string
		path     string
		mode     string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openExistingStore()
			if err != nil {
				return err
			}
			defer s.Close()

			engine := query.New(s, semantic.Unavailable{})
			results, notice, err := engine.Search(context.Background(), query.Request{
				Mode:   query.Mode(mode),
				Query:  args[0],
				Limit:  limit,
				Filter: query.Filter{Language: language, PathSubstr: path},
			})
			if err != nil {
				return err
			}

			if notice != "" && !jsonFlag {
				yellow.Fprintln(cmd.ErrOrStderr(), notice)
			}

			return printResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum results")
	cmd.Flags().StringVar(&language, "language", "", "Filter by language tag")
	cmd.Flags().StringVar(&path, "path", "", "Filter by path substring")
	cmd.Flags().StringVar(&mode, "mode", "fulltext", "Search mode: fulltext|semantic|hybrid")
	return cmd
}
