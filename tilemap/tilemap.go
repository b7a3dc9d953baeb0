package tilemap

import (
	"log/slog"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Map is a handle to at most one grid addressed in world coordinates.
// The zero value is not usable; call New.
type Map struct {
	grid       *gridgraph.GridGraph
	offX, offY int
	log        *slog.Logger
}

// New returns an empty Map. Call Create before any query.
func New(opts ...Option) *Map {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map{log: cfg.Logger}
}

// Create builds a fresh width×height grid whose tile (0,0) sits at world
// (offsetX, offsetY), replacing any previous grid together with its costs and
// path. On error the previous grid is kept.
func (m *Map) Create(width, height int, diagonals bool, offsetX, offsetY int) error {
	opts := gridgraph.DefaultGridOptions()
	if diagonals {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(width, height, opts)
	if err != nil {
		m.log.Debug("tilemap: create rejected", "width", width, "height", height, "error", err)
		return err
	}
	m.grid = gg
	m.offX, m.offY = offsetX, offsetY
	m.log.Debug("tilemap: grid created",
		"width", width, "height", height, "diagonals", diagonals,
		"offset_x", offsetX, "offset_y", offsetY)

	return nil
}

// Ready reports whether a grid is loaded.
func (m *Map) Ready() bool { return m.grid != nil }

// Grid returns the underlying grid, or nil when none is loaded.
func (m *Map) Grid() *gridgraph.GridGraph { return m.grid }

// Offset returns the world position of grid tile (0,0).
func (m *Map) Offset() (x, y int) { return m.offX, m.offY }

// Bounds returns the inclusive world-space rectangle covered by the grid.
func (m *Map) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	if m.grid == nil {
		return 0, 0, 0, 0, false
	}

	return m.offX, m.offY, m.offX + m.grid.Width - 1, m.offY + m.grid.Height - 1, true
}

// SetCost sets the loss of world tile (x,y); astar.Impassable blocks it.
// Returns false, leaving the grid untouched, when no grid is loaded, the
// tile lies outside the grid, or the cost is an invalid negative.
func (m *Map) SetCost(x, y, cost int) bool {
	if m.grid == nil {
		return false
	}
	if err := m.grid.SetCost(x-m.offX, y-m.offY, cost); err != nil {
		m.log.Debug("tilemap: cost rejected", "x", x, "y", y, "cost", cost, "error", err)
		return false
	}

	return true
}

// Cost returns the loss of world tile (x,y).
func (m *Map) Cost(x, y int) (int, bool) {
	if m.grid == nil {
		return 0, false
	}
	c, err := m.grid.Cost(x-m.offX, y-m.offY)
	if err != nil {
		return 0, false
	}

	return c, true
}

// Search finds a path between two world tiles, clamping both into the grid.
// Returns the number of tiles on the path, or 0 when no grid is loaded or no
// path exists. A start equal to the goal yields 2.
func (m *Map) Search(sx, sy, ex, ey int) int {
	if m.grid == nil {
		return 0
	}
	gsx, gsy := m.clamp(sx, sy)
	gex, gey := m.clamp(ex, ey)

	found, err := m.grid.Search(gsx, gsy, gex, gey)
	if err != nil {
		m.log.Debug("tilemap: search error", "error", err)
		return 0
	}
	if !found {
		m.log.Debug("tilemap: no path",
			"from_x", gsx+m.offX, "from_y", gsy+m.offY, "to_x", gex+m.offX, "to_y", gey+m.offY)
		return 0
	}

	return m.grid.PathLen()
}

// PathLen returns the length of the last successful path, 0 otherwise.
func (m *Map) PathLen() int {
	if m.grid == nil {
		return 0
	}

	return m.grid.PathLen()
}

// PathCost returns the accumulated cost of the last successful path.
func (m *Map) PathCost() int {
	if m.grid == nil {
		return 0
	}

	return m.grid.PathCost()
}

// PathPoint returns the world coordinates of the index-th tile of the last
// path. ok is false when index is outside [0, PathLen()).
func (m *Map) PathPoint(index int) (x, y int, ok bool) {
	if m.grid == nil {
		return 0, 0, false
	}
	idx := m.grid.PathIndices()
	if index < 0 || index >= len(idx) {
		return 0, 0, false
	}
	gx, gy := m.grid.Coordinate(idx[index])

	return gx + m.offX, gy + m.offY, true
}

// Release drops the grid. Later queries fail until the next Create.
func (m *Map) Release() {
	if m.grid != nil {
		m.log.Debug("tilemap: grid released")
	}
	m.grid = nil
	m.offX, m.offY = 0, 0
}

// clamp converts world (x,y) to grid space and clamps it into bounds.
func (m *Map) clamp(x, y int) (int, int) {
	return clampInt(x-m.offX, 0, m.grid.Width-1), clampInt(y-m.offY, 0, m.grid.Height-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
