// Package graph defines the connectivity model for a single-channel
// wireless mesh network: an undirected simple graph over integer node
// identifiers, with deterministic adjacency ordering so BFS/DFS callers
// get reproducible results.
package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrSelfLoop indicates an edge of the form (u, u) was supplied to
// NewTopology.
var ErrSelfLoop = errors.New("graph: self-loop edge")

// Edge is an unordered pair of node identifiers.
type Edge struct {
	U, V int
}

// Topology is an undirected simple graph: no self-loops, no parallel
// edges. It is immutable after NewTopology returns.
type Topology struct {
	adj map[int]map[int]struct{}
}

// NewTopology builds a Topology from a list of unordered edges.
// Self-loops are rejected with ErrSelfLoop; parallel edges (including
// the reversed pair of an edge already seen) are silently deduplicated.
// Adjacency is symmetric by construction: callers never need to list
// both (u, v) and (v, u).
func NewTopology(edges []Edge) (*Topology, error) {
	adj := make(map[int]map[int]struct{})
	ensure := func(n int) {
		if _, ok := adj[n]; !ok {
			adj[n] = make(map[int]struct{})
		}
	}
	for _, e := range edges {
		if e.U == e.V {
			return nil, fmt.Errorf("graph: edge (%d, %d): %w", e.U, e.V, ErrSelfLoop)
		}
		ensure(e.U)
		ensure(e.V)
		adj[e.U][e.V] = struct{}{}
		adj[e.V][e.U] = struct{}{}
	}
	return &Topology{adj: adj}, nil
}

// Neighbors returns N(u) in deterministic ascending order. Returns an
// empty slice (not an error) for a node that exists with no neighbors;
// a node absent from the topology also yields an empty slice, since the
// CORE treats "unknown node" and "isolated node" identically for
// traversal purposes.
func (t *Topology) Neighbors(u int) []int {
	nbrs := t.adj[u]
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// HasEdge reports whether {u, v} is an edge of the topology.
func (t *Topology) HasEdge(u, v int) bool {
	nbrs, ok := t.adj[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]
	return ok
}

// Nodes returns every node appearing as an edge endpoint, in
// deterministic ascending order.
func (t *Topology) Nodes() []int {
	out := make([]int, 0, len(t.adj))
	for n := range t.adj {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Degree returns len(Neighbors(u)).
func (t *Topology) Degree(u int) int {
	return len(t.adj[u])
}

// EdgeCount returns the number of distinct undirected edges.
func (t *Topology) EdgeCount() int {
	n := 0
	for u, nbrs := range t.adj {
		for v := range nbrs {
			if u < v {
				n++
			}
		}
	}
	return n
}

// Edges returns every edge once, with U < V, in deterministic order.
// Used by the rendering and network-description export packages; the
// CORE itself never needs a flattened edge list.
func (t *Topology) Edges() []Edge {
	out := make([]Edge, 0, t.EdgeCount())
	for _, u := range t.Nodes() {
		for _, v := range t.Neighbors(u) {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	return out
}
