// Package cmd wires codelens's Cobra command surface to the internal
// scan/store/index/query packages.
package cmd

import (
	"errors"

	"github.com/harrison/codelens/internal/index"
	"github.com/spf13/cobra"
)

// ErrIndexMissing is surfaced by any read command that finds no store at
// the configured index path.
var ErrIndexMissing = errors.New("cmd: no index found; run 'codelens index' first")

// IsUserFacing reports whether err is one of the two errors that map to
// exit code 1 per the external interface (invalid directory or missing
// index); anything else is a storage or internal error and maps to exit
// code 2.
func IsUserFacing(err error) bool {
	return errors.Is(err, index.ErrNotADirectory) || errors.Is(err, ErrIndexMissing)
}

// NewRootCommand creates and returns the root Cobra command for codelens.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "codelens",
		Short:   "Local code search and indexing engine",
		Version: version,
		Long: `codelens indexes a source tree into a local full-text and
symbol search store, then answers queries against it.

It never leaves the machine: the index is a single SQLite file under
a caller-chosen directory, and search modes (full-text, symbol,
file-name, hybrid) all read from it.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&indexPathFlag, "index-path", "", "Index directory (default \".codelens/index\")")
	root.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output machine-readable JSON")

	root.AddCommand(newIndexCommand())
	root.AddCommand(newSearchCommand())
	root.AddCommand(newSymbolCommand())
	root.AddCommand(newFilesCommand())
	root.AddCommand(newStatsCommand())
	root.AddCommand(newClearCommand())
	root.AddCommand(newListFilesCommand())

	return root
}

// indexPathFlag and jsonFlag are bound by every subcommand's persistent
// root flags; resolveIndexPath applies the config-file default when unset.
var (
	indexPathFlag string
	jsonFlag      bool
)
