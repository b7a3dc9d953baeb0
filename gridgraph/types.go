package gridgraph

import "github.com/katalvlaran/tilepath/astar"

// Edge costs in tenths of a tile, keeping √2 in integer arithmetic.
const (
	// StraightCost is the cost of an orthogonal step.
	StraightCost = 10
	// DiagonalCost is the cost of a diagonal step (≈ 10·√2).
	DiagonalCost = 14
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: W, E, N, S.
	Conn4 Connectivity = iota
	// Conn8 adds NW, NE, SW, SE.
	Conn8
)

// Cell is a tile position together with its loss at the time it was read.
type Cell struct {
	X, Y int // column and row within the grid
	Cost int // tile loss; astar.Impassable when blocked
}

// DefaultMaxCells caps width×height when GridOptions.MaxCells is unset
// (a 4096×4096 grid).
const DefaultMaxCells = 1 << 24

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// MaxCells bounds width×height; 0 or negative means DefaultMaxCells.
	MaxCells int
}

// DefaultGridOptions returns GridOptions with Conn=Conn4 and
// MaxCells=DefaultMaxCells.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4, MaxCells: DefaultMaxCells}
}

// GridGraph is a tile lattice backed by an astar arena.
// Width and Height are fixed at construction; tile losses are mutable.
// Node i of the arena is the tile at Coordinate(i) and carries Tag == i.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity

	graph  *astar.Graph
	engine *astar.Engine
}
