package cmd

import (
	"github.com/harrison/codelens/internal/query"
	"github.com/harrison/codelens/internal/semantic"
	"github.com/spf13/cobra"
)

func newSymbolCommand() *cobra.Command {
	var (
		limit int
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "symbol <name>",
		Short: "Search for a function, class, or variable by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openExistingStore()
			if err != nil {
				return err
			}
			defer s.Close()

			engine := query.New(s, semantic.Unavailable{})
			results, err := engine.SearchSymbol(args[0], query.SymbolKind(kind), limit)
			if err != nil {
				return err
			}

			return printResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum results")
	cmd.Flags().StringVar(&kind, "type", "", "Symbol kind: function|class|variable (default: all)")
	return cmd
}
