package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wandstem/tdmasched/internal/config"
	"github.com/wandstem/tdmasched/internal/netdesc"
)

func newNetdescCmd() *cobra.Command {
	var configPath, outPath, netName string

	cmd := &cobra.Command{
		Use:   "netdesc",
		Short: "Export a NED-style network description of the topology for an external simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.Load(configPath)
			if err != nil {
				return err
			}
			topo, err := req.ToTopology()
			if err != nil {
				return fmt.Errorf("netdesc: %w", err)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("netdesc: %w", err)
			}
			defer f.Close()

			if err := netdesc.Write(f, topo, netName); err != nil {
				return fmt.Errorf("netdesc: %w", err)
			}
			log.Info().Str("out", outPath).Msg("network description exported")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML plan request (required)")
	cmd.Flags().StringVar(&outPath, "out", "topology.ned", "output NED file path")
	cmd.Flags().StringVar(&netName, "name", "Mesh", "NED network name")
	cmd.MarkFlagRequired("config")

	return cmd
}
