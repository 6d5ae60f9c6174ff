package pathsearch

import "github.com/wandstem/tdmasched/internal/graph"

// DFSAllPaths enumerates every simple path (no repeated nodes) from src
// to dst whose node count is <= maxLen, via a depth-first walk ordered
// by Topology.Neighbors. The bound is on path node count, not recursion
// depth: a path of k nodes corresponds to k-1 recursive descents.
func DFSAllPaths(t *graph.Topology, src, dst, maxLen int) [][]int {
	var out [][]int
	onPath := map[int]bool{src: true}
	dfsWalk(t, src, dst, maxLen, []int{src}, onPath, &out)
	return out
}

func dfsWalk(t *graph.Topology, cur, dst, remaining int, path []int, onPath map[int]bool, out *[][]int) {
	if cur == dst {
		found := make([]int, len(path))
		copy(found, path)
		*out = append(*out, found)
	}
	if remaining <= 1 {
		return
	}
	for _, next := range t.Neighbors(cur) {
		if onPath[next] {
			continue
		}
		onPath[next] = true
		dfsWalk(t, next, dst, remaining-1, append(path, next), onPath, out)
		onPath[next] = false
	}
}

// ShortestPath returns the path with the smallest node count; ties are
// broken by first occurrence in paths.
func ShortestPath(paths [][]int) []int {
	if len(paths) == 0 {
		return nil
	}
	best := paths[0]
	for _, p := range paths[1:] {
		if len(p) < len(best) {
			best = p
		}
	}
	return best
}
