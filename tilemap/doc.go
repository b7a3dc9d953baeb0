// Package tilemap is a world-coordinate facade over gridgraph.
//
// A Map holds at most one grid. Callers address tiles in world space; the
// facade subtracts a fixed (offsetX, offsetY) to reach grid space.
//
// Query policy:
//
//   - Search clamps each coordinate into the grid after removing the offset,
//     so a query far outside the map resolves to the nearest edge tile.
//   - SetCost rejects coordinates outside the grid and leaves it unmutated.
//
// Results are exposed through a narrow, handle-style surface: Search returns
// the path length (0 on failure, 2 for a start equal to the goal) and
// PathPoint returns one world-space point at a time.
//
// A Map is not safe for concurrent use; wrap it in a mutex when shared.
package tilemap
