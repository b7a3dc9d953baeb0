package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/tilepath/astar"
)

// ExpandIsland finds the fewest blocked tiles that must be cleared to join
// component srcComp to component dstComp, as identified by
// ConnectedComponents(). Returns the sequence of cell-indices (row-major)
// from a tile of srcComp to a tile of dstComp, and the number of blocked
// tiles on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0–1 BFS from all srcComp cells over the neighbor lists:
//     • entering a passable tile → cost 0
//     • entering a blocked tile  → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors.
//
// Clearing the blocked tiles on the path (SetCost to a non-negative loss)
// makes both components searchable from one another.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, breaches int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	nodes := gg.graph.Nodes()
	N := len(nodes)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		for _, nb := range nodes[u].Neighbors {
			v := int(nb.Node)
			step := 0
			if nodes[v].Loss == astar.Impassable {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every tile is reachable through the lattice, so target is always set.
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}

	return path, dist[target], nil
}
