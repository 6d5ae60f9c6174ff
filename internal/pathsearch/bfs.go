// Package pathsearch implements the two traversal primitives the Router
// builds on: shortest-path BFS and depth-limited all-paths DFS, both
// walking neighbors in the deterministic order Topology.Neighbors
// guarantees, so repeated calls on the same inputs return the same path.
package pathsearch

import (
	"container/list"

	"github.com/wandstem/tdmasched/internal/graph"
)

// BFS returns a shortest path [src, ..., dst] as a node sequence, or nil
// if dst is unreachable from src. src == dst returns []int{src}.
//
// Standard FIFO-frontier BFS with one parent pointer recorded the first
// time a node is enqueued; ties between equal-length paths are broken
// by Topology.Neighbors' ascending order, so the first path discovered
// wins.
func BFS(t *graph.Topology, src, dst int) []int {
	if src == dst {
		return []int{src}
	}

	parentOf := map[int]int{src: src}
	frontier := list.New()
	frontier.PushBack(src)

	for frontier.Len() > 0 {
		front := frontier.Front()
		frontier.Remove(front)
		u := front.Value.(int)

		if u == dst {
			return reconstructPath(dst, src, parentOf)
		}

		for _, v := range t.Neighbors(u) {
			if _, seen := parentOf[v]; seen {
				continue
			}
			parentOf[v] = u
			frontier.PushBack(v)
		}
	}
	return nil
}

func reconstructPath(dst, src int, parentOf map[int]int) []int {
	path := []int{dst}
	for path[len(path)-1] != src {
		cur := path[len(path)-1]
		path = append(path, parentOf[cur])
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
