package pathsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandstem/tdmasched/internal/graph"
	"github.com/wandstem/tdmasched/internal/pathsearch"
)

func TestBFS_SameNodeReturnsSingleton(t *testing.T) {
	topo, err := graph.NewTopology([]graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, pathsearch.BFS(topo, 0, 0))
}

func TestBFS_DirectNeighbor(t *testing.T) {
	topo, err := graph.NewTopology([]graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, pathsearch.BFS(topo, 0, 1))
}

func TestBFS_UnreachableReturnsNil(t *testing.T) {
	topo, err := graph.NewTopology([]graph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)
	assert.Nil(t, pathsearch.BFS(topo, 0, 3))
}

func TestBFS_PicksShortestOverLongerDetour(t *testing.T) {
	// 0-1-2 direct, plus a longer detour 0-3-4-2.
	topo, err := graph.NewTopology([]graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2},
		{U: 0, V: 3}, {U: 3, V: 4}, {U: 4, V: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, pathsearch.BFS(topo, 0, 2))
}

func TestBFS_S1Topology(t *testing.T) {
	// Topology from spec scenario S1: {(0,1),(0,2),(1,2),(1,3),(2,3)}.
	topo, err := graph.NewTopology([]graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, pathsearch.BFS(topo, 3, 2))
}
