package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/harrison/codelens/internal/index"
	"github.com/harrison/codelens/internal/ignore"
	"github.com/harrison/codelens/internal/store"
	"github.com/spf13/cobra"
)

func newClearCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			indexPath, err := resolveIndexPath()
			if err != nil {
				return err
			}
			if !store.Exists(indexPath) {
				fmt.Fprintln(cmd.OutOrStdout(), "not indexed")
				return nil
			}

			if !force {
				confirmed, err := confirm(cmd, "This will clear the entire index. Continue? [y/N] ")
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			s, err := store.Open(indexPath)
			if err != nil {
				return fmt.Errorf("open index: %w", err)
			}
			defer s.Close()

			ix := index.New(s, indexPath, ignore.New(nil), nil)
			if err := ix.Clear(); err != nil {
				return err
			}

			green.Fprintln(cmd.OutOrStdout(), "Index cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
