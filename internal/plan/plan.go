// Package plan implements the single CORE entry surface described in
// spec §6: given a topology, a requested-stream list, a slot budget,
// and the multipath/extra-hops knobs, it routes every stream and
// greedily schedules the result, returning a Schedule plus reports of
// anything that could not be routed or scheduled.
package plan

import (
	"errors"
	"fmt"

	"github.com/wandstem/tdmasched/internal/graph"
	"github.com/wandstem/tdmasched/internal/router"
	"github.com/wandstem/tdmasched/internal/scheduler"
)

// Sentinel errors for InvalidParameter (spec §7). Run's only other fatal
// error is InvalidTopology, which it returns wrapping the error from
// graph.NewTopology (graph.ErrSelfLoop).
var (
	// ErrInvalidSlotCount indicates slot_count <= 0.
	ErrInvalidSlotCount = errors.New("plan: slot_count must be positive")

	// ErrInvalidExtraHops indicates extra_hops < 0.
	ErrInvalidExtraHops = errors.New("plan: extra_hops must be non-negative")
)

// Request is the input to Run, mirroring the plan() entry surface of
// spec §6 verbatim.
type Request struct {
	TopologyEdges    []graph.Edge
	RequestedStreams []router.RequestedStream
	SlotCount        int
	Multipath        bool
	ExtraHops        int
}

// Result bundles the Schedule with everything that didn't make it in:
// streams the Router couldn't reach at all, and blocks the Scheduler
// couldn't place within SlotCount. Both are expected, non-fatal outcomes
// per spec §7 — never errors.
type Result struct {
	Schedule      scheduler.Schedule
	RouteFailures []router.RouteFailure
	Unscheduled   []scheduler.BlockID
	RoutedStreams []router.Block
}

// Run validates parameters, builds the Topology, routes every requested
// stream, and greedily schedules the routed blocks. InvalidTopology
// (self-loop) and InvalidParameter (bad SlotCount/ExtraHops) are raised
// before any routing or scheduling work begins, per the §7 propagation
// policy.
func Run(req Request) (Result, error) {
	if req.SlotCount <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidSlotCount, req.SlotCount)
	}
	if req.ExtraHops < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidExtraHops, req.ExtraHops)
	}

	topo, err := graph.NewTopology(req.TopologyEdges)
	if err != nil {
		return Result{}, fmt.Errorf("plan: invalid topology: %w", err)
	}

	routed, failures := router.Route(topo, req.RequestedStreams, req.Multipath, req.ExtraHops)
	sched := scheduler.Run(topo, routed, req.SlotCount)

	return Result{
		Schedule:      sched.Schedule,
		RouteFailures: failures,
		Unscheduled:   sched.Unscheduled,
		RoutedStreams: routed,
	}, nil
}
