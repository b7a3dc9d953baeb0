package gridgraph

import "github.com/katalvlaran/tilepath/astar"

// ConnectedComponents finds all contiguous regions of passable tiles
// (loss ≠ astar.Impassable), following the grid's neighbor lists.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order.
//
// Two tiles in different components can never be joined by Search.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	nodes := gg.graph.Nodes()
	seen := make([]bool, len(nodes))
	var comps [][]int

	for i0 := range nodes {
		if seen[i0] || nodes[i0].Loss == astar.Impassable {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, nb := range nodes[u].Neighbors {
				v := int(nb.Node)
				if seen[v] || nodes[v].Loss == astar.Impassable {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf returns the index into ConnectedComponents() of the component
// holding (x,y), or -1 for a blocked or out-of-range tile.
func (gg *GridGraph) ComponentOf(comps [][]int, x, y int) int {
	if !gg.Passable(x, y) {
		return -1
	}
	target := gg.Index(x, y)
	for ci, comp := range comps {
		for _, i := range comp {
			if i == target {
				return ci
			}
		}
	}

	return -1
}
