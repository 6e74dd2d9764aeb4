// Package perusecmder
package perusecmder

import (
	"github.com/spf13/cobra"

	backfillcmder "github.com/perusehq/peruse/cmd/peruse/backfill"
	seedcmder "github.com/perusehq/peruse/cmd/peruse/seed"
	servecmder "github.com/perusehq/peruse/cmd/peruse/serve"
	watchcmder "github.com/perusehq/peruse/cmd/peruse/watch"
	versioncmder "github.com/perusehq/peruse/cmd/version"
)

const peruseLongDesc string = `Peruse is a content aggregation and discussion backend.

Run services using:
  peruse serve         Run the API server (feed, stream, comments)
  peruse seed          Seed demo articles into a database
  peruse backfill      Rebuild the vector index from stored chunks
  peruse watch         Follow the feed change stream`

const peruseShortDesc string = "Peruse - ranked feeds and threaded discussions"

func NewPeruseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peruse",
		Short: peruseShortDesc,
		Long:  peruseLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Directory containing config.toml (default: .peruse resolution)")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(seedcmder.NewSeedCmd())
	cmd.AddCommand(backfillcmder.NewBackfillCmd())
	cmd.AddCommand(watchcmder.NewWatchCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
