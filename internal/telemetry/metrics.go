// Package telemetry exposes Prometheus counters for the CLI's plan
// subcommand. The CORE never imports this package; counters are
// incremented by the CLI after plan.Run returns, from the structured
// reports in plan.Result.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters exported by the plan subcommand.
type Metrics struct {
	StreamsRouted      prometheus.Counter
	StreamsUnreachable prometheus.Counter
	BlocksScheduled    prometheus.Counter
	BlocksUnscheduled  prometheus.Counter
}

// New registers and returns a fresh Metrics set against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StreamsRouted: factory.NewCounter(prometheus.CounterOpts{
			Name: "tdmasched_streams_routed_total",
			Help: "Requested streams successfully expanded into a routed block.",
		}),
		StreamsUnreachable: factory.NewCounter(prometheus.CounterOpts{
			Name: "tdmasched_streams_unreachable_total",
			Help: "Requested streams the Router could not reach at all.",
		}),
		BlocksScheduled: factory.NewCounter(prometheus.CounterOpts{
			Name: "tdmasched_blocks_scheduled_total",
			Help: "Stream blocks fully placed within the slot budget.",
		}),
		BlocksUnscheduled: factory.NewCounter(prometheus.CounterOpts{
			Name: "tdmasched_blocks_unscheduled_total",
			Help: "Stream blocks rolled back for lack of a feasible slot.",
		}),
	}
}

// Serve starts a blocking HTTP server exposing /metrics on addr and
// returns only when the server fails. The plan subcommand calls it
// directly, after planning has finished.
func Serve(addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
