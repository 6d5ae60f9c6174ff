// Package scheduler implements the greedy, conflict-checked timeslot
// assignment described in spec §4.5: it iterates stream blocks in
// priority order, placing each one-hop transmission at the earliest
// feasible timeslot strictly later than the previous hop in its block, and
// rolls a block back atomically — all its entries or none — if any one
// of its hops can't be placed within slot_count.
//
// KEY RULES:
//  1. A block's transmissions schedule strictly in order: last_ts
//     advances to the placed slot, then by one more, before the next
//     hop in the block is attempted (hops share an endpoint, so they
//     can never share a timeslot).
//  2. A block that runs into an unreachable hop or exhausts slot_count
//     without placing a hop is rolled back in full: either every
//     transmission in the block is scheduled, or none are.
//  3. Determinism: given the same topology, routed stream list and
//     slot_count, the output Schedule is bit-for-bit reproducible,
//     because block order, hop order within a block, and the timeslot
//     scan are all deterministic.
package scheduler

import (
	"github.com/wandstem/tdmasched/internal/conflict"
	"github.com/wandstem/tdmasched/internal/graph"
	"github.com/wandstem/tdmasched/internal/router"
)

// BlockID is a stable index into the routed stream list passed to Run,
// used to report unschedulable blocks without re-exposing their
// transmission contents.
type BlockID int

// Result is the outcome of a scheduling pass: the finalized Schedule
// plus the identifiers of blocks that could not be placed within
// slot_count. Unscheduled blocks contribute zero entries to Schedule.
type Result struct {
	Schedule    Schedule
	Unscheduled []BlockID
}

// Run assigns timeslots to every hop of every block in blocks, in
// order, subject to slotCount. Reachability failures (a hop whose
// endpoints are no longer an edge of topo) and capacity failures (no
// feasible slot found before slotCount) both fail the whole block and
// trigger its rollback; scheduling continues with the next block.
func Run(topo *graph.Topology, blocks []router.Block, slotCount int) Result {
	partial := newPartialSchedule()
	var unscheduled []BlockID

	for bi, block := range blocks {
		if !scheduleBlock(partial, topo, block, slotCount) {
			unscheduled = append(unscheduled, BlockID(bi))
		}
	}

	return Result{Schedule: partial.entries, Unscheduled: unscheduled}
}

// scheduleBlock attempts to place every hop of block, rolling back the
// whole block on any failure. Returns true iff the entire block was
// placed.
func scheduleBlock(partial *partialSchedule, topo *graph.Topology, block router.Block, slotCount int) bool {
	lastTS := 0
	appended := 0

	for _, hop := range block {
		if !topo.HasEdge(hop.Src, hop.Dst) {
			partial.rollback(appended)
			return false
		}

		ts, ok := findFeasibleSlot(partial, topo, hop, lastTS, slotCount)
		if !ok {
			partial.rollback(appended)
			return false
		}

		partial.append(ts, hop.Src, hop.Dst)
		appended++
		lastTS = ts + 1
	}

	return true
}

// findFeasibleSlot scans t from lastTS up to slotCount-1 and returns the
// first timeslot where hop is conflict-free.
func findFeasibleSlot(partial *partialSchedule, topo *graph.Topology, hop router.Hop, lastTS, slotCount int) (int, bool) {
	for t := lastTS; t < slotCount; t++ {
		if conflict.Feasible(partial, topo, t, hop.Src, hop.Dst) {
			return t, true
		}
	}
	return 0, false
}
