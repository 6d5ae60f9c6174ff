package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wandstem/tdmasched/internal/config"
	"github.com/wandstem/tdmasched/internal/render"
)

func newDrawCmd() *cobra.Command {
	var configPath, outPath string

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render the topology (not the schedule) to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.Load(configPath)
			if err != nil {
				return err
			}
			topo, err := req.ToTopology()
			if err != nil {
				return fmt.Errorf("draw: %w", err)
			}
			if err := render.Topology(topo, outPath); err != nil {
				return fmt.Errorf("draw: %w", err)
			}
			log.Info().Str("out", outPath).Msg("topology rendered")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML plan request (required)")
	cmd.Flags().StringVar(&outPath, "out", "topology.pdf", "output image path")
	cmd.MarkFlagRequired("config")

	return cmd
}
