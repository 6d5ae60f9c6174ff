package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandstem/tdmasched/internal/graph"
	"github.com/wandstem/tdmasched/internal/router"
)

func s1Topology(t *testing.T) *graph.Topology {
	t.Helper()
	topo, err := graph.NewTopology([]graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3},
	})
	require.NoError(t, err)
	return topo
}

func TestRoute_OneHopStreamIsDirectBlock(t *testing.T) {
	topo := s1Topology(t)
	blocks, failures := router.Route(topo, []router.RequestedStream{{Src: 0, Dst: 1}}, false, 0)
	require.Empty(t, failures)
	require.Len(t, blocks, 1)
	assert.Equal(t, router.Block{{Src: 0, Dst: 1}}, blocks[0])
}

func TestRoute_MultiHopStreamExpandsViaBFS(t *testing.T) {
	topo := s1Topology(t)
	blocks, failures := router.Route(topo, []router.RequestedStream{{Src: 3, Dst: 0}}, false, 0)
	require.Empty(t, failures)
	require.Len(t, blocks, 1)
	assert.Equal(t, router.Block{{Src: 3, Dst: 1}, {Src: 1, Dst: 0}}, blocks[0], "3 and 0 are not adjacent in S1 topology; BFS goes through 1")
}

func TestRoute_UnreachableStreamIsSkippedNotAborting(t *testing.T) {
	// S6: topology {(0,1),(2,3)}, stream (0,3) unreachable.
	topo, err := graph.NewTopology([]graph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	streams := []router.RequestedStream{{Src: 0, Dst: 3}, {Src: 0, Dst: 1}}
	blocks, failures := router.Route(topo, streams, false, 0)

	require.Len(t, failures, 1)
	assert.Equal(t, router.RequestedStream{Src: 0, Dst: 3}, failures[0].Stream)

	require.Len(t, blocks, 1, "the reachable stream still routes despite the earlier failure")
	assert.Equal(t, router.Block{{Src: 0, Dst: 1}}, blocks[0])
}

func TestRoute_MultipathAddsDisjointSecondary(t *testing.T) {
	// Stream (6,0): no direct edge in the RTSS topology, so routing goes
	// through the multi-hop BFS branch where redundancy selection applies.
	topo := rtssPaperTopology(t)
	blocks, failures := router.Route(topo, []router.RequestedStream{{Src: 6, Dst: 0}}, true, 2)
	require.Empty(t, failures)
	require.Len(t, blocks, 2, "primary and a redundant secondary block")

	primaryInterior := interiorNodes(blocks[0])
	secondaryInterior := interiorNodes(blocks[1])
	for _, n := range secondaryInterior {
		assert.NotContains(t, primaryInterior, n, "secondary interior must be node-disjoint from primary's")
	}
}

func TestRoute_MultipathFalseNeverAddsSecondary(t *testing.T) {
	topo := rtssPaperTopology(t)
	blocks, _ := router.Route(topo, []router.RequestedStream{{Src: 6, Dst: 0}}, false, 2)
	assert.Len(t, blocks, 1)
}

func TestRoute_OneHopCaseNeverGetsRedundancy(t *testing.T) {
	// Per §4.3, step 3 (redundancy) only triggers off the multi-hop
	// primary computed in step 2; the one-hop case in step 1 short-circuits
	// before a primary is ever computed, so multipath is a no-op here even
	// though an alternate path (3-1-0 or 3-5-0) exists in the topology.
	topo := rtssPaperTopology(t)
	blocks, failures := router.Route(topo, []router.RequestedStream{{Src: 3, Dst: 0}}, true, 2)
	require.Empty(t, failures)
	require.Len(t, blocks, 1)
	assert.Equal(t, router.Block{{Src: 3, Dst: 0}}, blocks[0])
}

func interiorNodes(b router.Block) []int {
	if len(b) <= 1 {
		return nil
	}
	var out []int
	for _, h := range b[:len(b)-1] {
		out = append(out, h.Dst)
	}
	return out
}

func rtssPaperTopology(t *testing.T) *graph.Topology {
	t.Helper()
	pairs := [][2]int{
		{0, 1}, {0, 3}, {0, 5}, {0, 7},
		{1, 3}, {1, 5}, {1, 7},
		{2, 4}, {2, 6}, {2, 7}, {2, 8},
		{3, 5},
		{4, 5}, {4, 6}, {4, 7}, {4, 8},
		{5, 7}, {5, 8},
		{6, 8},
		{7, 8},
	}
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{U: p[0], V: p[1]}
	}
	topo, err := graph.NewTopology(edges)
	require.NoError(t, err)
	return topo
}
