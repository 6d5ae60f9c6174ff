package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wandstem/tdmasched/internal/config"
	"github.com/wandstem/tdmasched/internal/plan"
	"github.com/wandstem/tdmasched/internal/scheduler"
	"github.com/wandstem/tdmasched/internal/telemetry"
)

func newPlanCmd() *cobra.Command {
	var (
		configPath  string
		slots       int
		extraHops   int
		multipath   bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Route requested streams and greedily schedule the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.Load(configPath)
			if err != nil {
				return err
			}

			var multipathOverride *bool
			if cmd.Flags().Changed("multipath") {
				multipathOverride = &multipath
			}
			planReq := req.ToPlanRequest(slots, extraHops, multipathOverride)

			result, err := plan.Run(planReq)
			if err != nil {
				return fmt.Errorf("plan: %w", err)
			}

			reportResult(result)

			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				m := telemetry.New(reg)
				recordMetrics(m, planReq, result)
				log.Info().Str("addr", metricsAddr).Msg("serving /metrics, press ctrl-c to exit")
				if err := telemetry.Serve(metricsAddr, reg); err != nil {
					return fmt.Errorf("metrics server: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML plan request (required)")
	cmd.Flags().IntVar(&slots, "slots", 0, "override slot_count from the config file")
	cmd.Flags().IntVar(&extraHops, "extra-hops", 0, "override extra_hops from the config file")
	cmd.Flags().BoolVar(&multipath, "multipath", false, "override multipath from the config file")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus counters on this address after planning")
	cmd.MarkFlagRequired("config")

	return cmd
}

func reportResult(result plan.Result) {
	for _, tx := range scheduler.Project(result.Schedule) {
		log.Info().Int("timeslot", tx.Timeslot).Int("src", tx.Src).Int("dst", tx.Dst).Msg("scheduled")
	}
	for _, f := range result.RouteFailures {
		log.Warn().Int("src", f.Stream.Src).Int("dst", f.Stream.Dst).Msg("unreachable stream")
	}
	for _, bid := range result.Unscheduled {
		log.Warn().Int("block", int(bid)).Msg("block could not be scheduled within slot_count")
	}
}

func recordMetrics(m *telemetry.Metrics, req plan.Request, result plan.Result) {
	routed := len(req.RequestedStreams) - len(result.RouteFailures)
	for i := 0; i < routed; i++ {
		m.StreamsRouted.Inc()
	}
	for range result.RouteFailures {
		m.StreamsUnreachable.Inc()
	}

	scheduledBlocks := len(result.RoutedStreams) - len(result.Unscheduled)
	for i := 0; i < scheduledBlocks; i++ {
		m.BlocksScheduled.Inc()
	}
	for range result.Unscheduled {
		m.BlocksUnscheduled.Inc()
	}
}
