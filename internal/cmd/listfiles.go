package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListFilesCommand() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "list-files",
		Short: "Enumerate indexed paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openExistingStore()
			if err != nil {
				return err
			}
			defer s.Close()

			paths, err := s.Enumerate(language)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), paths)
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Filter by language tag")
	return cmd
}
