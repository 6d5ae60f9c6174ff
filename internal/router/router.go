// Package router rewrites a requested-stream list into a routed-stream
// list: each multi-hop logical stream is expanded into an ordered chain
// of one-hop transmissions (a Block) via shortest-path BFS, optionally
// followed by a spatially redundant Block selected by depth-limited DFS,
// preferring a path whose interior nodes are disjoint from the primary.
//
// Route never mutates its input requested-stream slice; it returns a
// freshly built routed-stream list plus a report of streams that could
// not be routed at all.
package router

import (
	"github.com/wandstem/tdmasched/internal/graph"
	"github.com/wandstem/tdmasched/internal/pathsearch"
)

// Hop is a one-hop transmission (src, dst), directed even though the
// underlying Topology edge is undirected.
type Hop struct {
	Src, Dst int
}

// Block is an ordered, non-empty chain of Hops realizing one path; the
// unit of atomic scheduling.
type Block []Hop

// RequestedStream is logical end-to-end traffic from Src to Dst, which
// may be many hops apart.
type RequestedStream struct {
	Src, Dst int
}

// RouteFailure records a requested stream the Router could not reach.
type RouteFailure struct {
	Stream RequestedStream
}

// Route expands each requested stream into one Block (one-hop case or
// multi-hop primary path) and, when multipath is true, a second Block
// carrying a spatially redundant path. Blocks appear in the same
// relative order as their originating requested streams; a primary
// Block always precedes its secondary.
//
// A requested stream with no path at all (UnreachableStream) is skipped
// — it contributes no Block to the routed list — and reported in the
// returned failures slice. Routing continues with the remaining streams.
func Route(t *graph.Topology, streams []RequestedStream, multipath bool, extraHops int) ([]Block, []RouteFailure) {
	routed := make([]Block, 0, len(streams))
	var failures []RouteFailure

	for _, s := range streams {
		if t.HasEdge(s.Src, s.Dst) {
			routed = append(routed, Block{{Src: s.Src, Dst: s.Dst}})
			continue
		}

		primary := pathsearch.BFS(t, s.Src, s.Dst)
		if primary == nil {
			failures = append(failures, RouteFailure{Stream: s})
			continue
		}
		routed = append(routed, pathToBlock(primary))

		if multipath {
			if secondary := selectSecondary(t, s, primary, extraHops); secondary != nil {
				routed = append(routed, pathToBlock(secondary))
			}
		}
	}

	return routed, failures
}

// selectSecondary implements the §4.3 redundancy step: search for every
// simple path up to len(primary)+extraHops nodes, drop the primary
// itself, and prefer a candidate whose interior nodes share nothing with
// the primary's interior. Returns nil when no secondary candidate exists
// at all (the caller falls back to temporal redundancy, out of scope
// for the CORE).
func selectSecondary(t *graph.Topology, s RequestedStream, primary []int, extraHops int) []int {
	maxLen := len(primary) + extraHops
	candidates := pathsearch.DFSAllPaths(t, s.Src, s.Dst, maxLen)
	candidates = removePath(candidates, primary)
	if len(candidates) == 0 {
		return nil
	}

	middle := interior(primary)
	var disjoint [][]int
	for _, p := range candidates {
		if !sharesAny(p, middle) {
			disjoint = append(disjoint, p)
		}
	}
	if len(disjoint) > 0 {
		return pathsearch.ShortestPath(disjoint)
	}
	return pathsearch.ShortestPath(candidates)
}

func interior(path []int) []int {
	if len(path) <= 2 {
		return nil
	}
	return path[1 : len(path)-1]
}

func sharesAny(path []int, nodes []int) bool {
	if len(nodes) == 0 {
		return false
	}
	set := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}
	for _, n := range path {
		if _, ok := set[n]; ok {
			return true
		}
	}
	return false
}

func removePath(paths [][]int, target []int) [][]int {
	out := make([][]int, 0, len(paths))
	for _, p := range paths {
		if !equalPath(p, target) {
			out = append(out, p)
		}
	}
	return out
}

func equalPath(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func pathToBlock(path []int) Block {
	block := make(Block, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		block = append(block, Hop{Src: path[i], Dst: path[i+1]})
	}
	return block
}
