package cmd

import (
	"fmt"

	"github.com/harrison/codelens/internal/index"
	"github.com/harrison/codelens/internal/logger"
	"github.com/harrison/codelens/internal/store"
	"github.com/spf13/cobra"
)

func newIndexCommand() *cobra.Command {
	var ignorePatterns []string

	cmd := &cobra.Command{
		Use:   "index <directory>",
		Short: "Index a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]

			indexPath, err := resolveIndexPath()
			if err != nil {
				return err
			}
			matcher, err := resolveIgnorePatterns(ignorePatterns)
			if err != nil {
				return err
			}

			s, err := store.Open(indexPath)
			if err != nil {
				return fmt.Errorf("open index: %w", err)
			}
			defer s.Close()

			log := logger.New(cmd.ErrOrStderr(), "warn")
			ix := index.New(s, indexPath, matcher, log)

			stats, err := ix.Index(root)
			if err != nil {
				return err
			}

			return printStats(cmd.OutOrStdout(), stats)
		},
	}

	cmd.Flags().StringArrayVar(&ignorePatterns, "ignore", nil, "Additional ignore pattern (repeatable)")
	return cmd
}
