// Package gridgraph treats a rectangular tile map as an astar graph, enabling
// coordinate-based A* searches and passable-region analysis.
//
// What:
//
//   - GridGraph allocates Width×Height astar nodes once, in row-major order
//     (index = y*Width + x), and wires their neighbor lists up front.
//   - Conn4 links left, right, up and down at cost 10.
//     Conn8 adds the diagonals at cost 14, each generated together with its
//     vertical step: up, up-left, up-right, then down, down-left, down-right.
//   - Every tile carries a loss (entry cost, default 0). astar.Impassable
//     blocks the tile. Losses persist across searches.
//   - Search resets transient node state, then runs A* with the Manhattan
//     heuristic (|Δx| + |Δy|) × 10.
//
// Why:
//
//   - Game maps: unit movement on a tile grid with terrain costs and walls.
//   - Repeated queries: one allocation, many searches, cheap cost updates.
//
// Heuristic note:
//
//	The Manhattan estimate is admissible for Conn4 only. With Conn8 it may
//	overestimate, trading optimality for fewer expansions.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H×d), Memory: O(W×H×d)  (d = 4 or 8).
//   - Search:              O(W×H×d × log(W×H)), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrNegativeCost: a negative cost other than astar.Impassable.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
