// Package cli wires the tdmasched command tree: plan, draw, and
// netdesc, per spec §6. It is shared by the module-root binary and
// cmd/tdmasched so `go run .` and `go run ./cmd/tdmasched` behave
// identically; the CORE never imports this package.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Main runs the tdmasched command tree and exits the process with a
// non-zero status on failure, per spec §6's exit-code contract.
func Main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("tdmasched failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tdmasched",
		Short:         "Route and schedule TDMA traffic over a wireless mesh topology",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newDrawCmd())
	cmd.AddCommand(newNetdescCmd())
	return cmd
}
