// Package gridgraph provides a tile-grid specialization of the astar engine.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Per-tile loss with astar.Impassable walls
//   - Coordinate searches with a Manhattan heuristic
//   - Passable-region analysis and minimal wall breaching
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tilepath/astar"
)

// NewGridGraph allocates a width×height grid with every tile loss at 0 and
// wires neighbor lists according to opts.Conn.
// Returns ErrEmptyGrid if width or height is not positive and
// ErrGridTooLarge if width×height exceeds opts.MaxCells (DefaultMaxCells
// when unset).
// Algorithmic complexity: O(W×H×d) time and memory.
func NewGridGraph(width, height int, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	limit := opts.MaxCells
	if limit <= 0 {
		limit = DefaultMaxCells
	}
	// Division keeps the bound check free of width*height overflow.
	if width > limit/height {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrGridTooLarge, width, height, limit)
	}
	total := width * height
	g := astar.NewGraph(total)
	for i := 0; i < total; i++ {
		id := g.AddNode(0)
		g.Node(id).Tag = i
	}

	gg := &GridGraph{
		Width:  width,
		Height: height,
		Conn:   opts.Conn,
		graph:  g,
	}
	gg.wire()

	engine, err := astar.NewEngine(g, astar.WithHeuristic(gg.Heuristic))
	if err != nil {
		return nil, err
	}
	gg.engine = engine

	return gg, nil
}

// wire fills every node's neighbor list. Order matters for tie-breaking:
// left, right, up (+ up diagonals), down (+ down diagonals).
func (gg *GridGraph) wire() {
	w, h := gg.Width, gg.Height
	diag := gg.Conn == Conn8
	nodes := gg.graph.Nodes()
	link := func(from, to int, cost int) {
		n := &nodes[from]
		n.Neighbors = append(n.Neighbors, astar.Neighbor{Node: astar.NodeID(to), Cost: cost})
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := gg.Index(x, y)
			if x > 0 {
				link(i, i-1, StraightCost)
			}
			if x < w-1 {
				link(i, i+1, StraightCost)
			}
			if y > 0 {
				link(i, i-w, StraightCost)
				if diag {
					if x > 0 {
						link(i, i-w-1, DiagonalCost)
					}
					if x < w-1 {
						link(i, i-w+1, DiagonalCost)
					}
				}
			}
			if y < h-1 {
				link(i, i+w, StraightCost)
				if diag {
					if x > 0 {
						link(i, i+w-1, DiagonalCost)
					}
					if x < w-1 {
						link(i, i+w+1, DiagonalCost)
					}
				}
			}
		}
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Nodes exposes the flattened node array, indexed like Index.
// Callers may read bookkeeping of the last search; prefer SetCost for writes.
func (gg *GridGraph) Nodes() []astar.Node {
	return gg.graph.Nodes()
}

// SetCost sets the loss of tile (x,y). Use astar.Impassable to block it.
// The value persists across searches until changed again.
func (gg *GridGraph) SetCost(x, y, cost int) error {
	if !gg.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}
	if cost < 0 && cost != astar.Impassable {
		return fmt.Errorf("%w: (%d,%d) cost=%d", ErrNegativeCost, x, y, cost)
	}
	gg.graph.Nodes()[gg.Index(x, y)].Loss = cost

	return nil
}

// Cost returns the loss of tile (x,y).
func (gg *GridGraph) Cost(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return gg.graph.Nodes()[gg.Index(x, y)].Loss, nil
}

// Passable reports whether (x,y) is inside the grid and not blocked.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.graph.Nodes()[gg.Index(x, y)].Loss != astar.Impassable
}

// Heuristic is the grid's astar.Heuristic: Manhattan distance in
// StraightCost units, or astar.Impassable for a blocked tile.
func (gg *GridGraph) Heuristic(g *astar.Graph, current, _, goal astar.NodeID) int {
	cur := g.Node(current)
	if cur.Loss == astar.Impassable {
		return astar.Impassable
	}
	x1, y1 := gg.Coordinate(cur.Tag)
	x2, y2 := gg.Coordinate(g.Node(goal).Tag)

	return (abs(y2-y1) + abs(x2-x1)) * StraightCost
}

// Search resets all transient node state and searches from (sx,sy) to
// (ex,ey). Returns (false, nil) when no path exists and ErrOutOfBounds for
// coordinates outside the grid. Any failure discards the previous path.
func (gg *GridGraph) Search(sx, sy, ex, ey int) (bool, error) {
	if !gg.InBounds(sx, sy) {
		gg.engine.Reset()
		return false, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, sx, sy)
	}
	if !gg.InBounds(ex, ey) {
		gg.engine.Reset()
		return false, fmt.Errorf("%w: end (%d,%d)", ErrOutOfBounds, ex, ey)
	}
	gg.graph.ResetSearchState()

	return gg.engine.Search(astar.NodeID(gg.Index(sx, sy)), astar.NodeID(gg.Index(ex, ey)))
}

// Path returns the cells of the last successful search, start first.
// A fresh slice is built on every call.
func (gg *GridGraph) Path() []Cell {
	ids := gg.engine.Path()
	nodes := gg.graph.Nodes()
	cells := make([]Cell, len(ids))
	for i, id := range ids {
		n := &nodes[id]
		x, y := gg.Coordinate(n.Tag)
		cells[i] = Cell{X: x, Y: y, Cost: n.Loss}
	}

	return cells
}

// PathIndices returns the row-major indices of the last successful search.
func (gg *GridGraph) PathIndices() []int {
	ids := gg.engine.Path()
	nodes := gg.graph.Nodes()
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = nodes[id].Tag
	}

	return out
}

// PathLen returns the number of cells in the last path (0 after a failure).
func (gg *GridGraph) PathLen() int { return len(gg.engine.Path()) }

// PathCost returns the accumulated cost of the last path.
func (gg *GridGraph) PathCost() int { return gg.engine.PathCost() }

// Expanded returns how many tiles the last search expanded.
func (gg *GridGraph) Expanded() int { return gg.engine.Expanded() }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
