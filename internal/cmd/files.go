package cmd

import (
	"github.com/harrison/codelens/internal/query"
	"github.com/harrison/codelens/internal/semantic"
	"github.com/spf13/cobra"
)

func newFilesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "files <pattern>",
		Short: "Search stored paths by a shell-style glob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openExistingStore()
			if err != nil {
				return err
			}
			defer s.Close()

			engine := query.New(s, semantic.Unavailable{})
			results, err := engine.SearchFiles(args[0], limit)
			if err != nil {
				return err
			}

			return printResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum results")
	return cmd
}
