// Package conflict encodes the unicity and interference predicates a
// partial Schedule must satisfy before a candidate one-hop transmission
// can be appended to it.
//
// Checks must be invoked against the schedule as it stood *before* the
// candidate's own two entries are appended: the TX-side and RX-side
// interference checks deliberately omit a "w != dst" / "w != src"
// exception (per spec §4.4), which only stays correct because callers
// check first, then append both entries atomically afterward.
package conflict

import "github.com/wandstem/tdmasched/internal/graph"

// Activity is one of TX or RX.
type Activity int

const (
	// TX marks a node transmitting in a timeslot.
	TX Activity = iota
	// RX marks a node receiving in a timeslot.
	RX
)

// Occupancy answers "is node n doing activity a at timeslot t?" against
// a partial schedule. scheduler.partialSchedule implements this with an
// index instead of a linear scan.
type Occupancy interface {
	// ActivityAt returns the activity scheduled for n at t, and whether
	// any activity is scheduled for n at t at all.
	ActivityAt(t, n int) (Activity, bool)
}

// Feasible reports whether (t, src, dst) can be appended to sched
// without violating unicity or interference. It checks three
// predicates; the candidate is feasible iff none holds.
func Feasible(sched Occupancy, topo *graph.Topology, t, src, dst int) bool {
	return !unicityConflict(sched, t, src, dst) &&
		!interferenceConflict(sched, topo, t, src, RX) &&
		!interferenceConflict(sched, topo, t, dst, TX)
}

// unicityConflict is true iff sched already has any entry for src or
// dst at timeslot t — a node does exactly one activity per timeslot.
func unicityConflict(sched Occupancy, t, src, dst int) bool {
	if _, ok := sched.ActivityAt(t, src); ok {
		return true
	}
	if _, ok := sched.ActivityAt(t, dst); ok {
		return true
	}
	return false
}

// interferenceConflict is true iff any neighbor of node at t is already
// scheduled for forbidden. Used once with node=src, forbidden=RX (a
// neighboring transmitter can't have a receiving neighbor at the same
// slot) and once with node=dst, forbidden=TX.
func interferenceConflict(sched Occupancy, topo *graph.Topology, t, node int, forbidden Activity) bool {
	for _, w := range topo.Neighbors(node) {
		if a, ok := sched.ActivityAt(t, w); ok && a == forbidden {
			return true
		}
	}
	return false
}
