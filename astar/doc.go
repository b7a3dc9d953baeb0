// Package astar provides a graph-agnostic A* search engine over an
// index-addressed node arena.
//
// Overview:
//
//   - Graph is a flat arena of Nodes. Nodes reference each other by NodeID
//     (an index into the arena), so parent pointers and neighbor lists never
//     alias Go pointers and the whole graph can be reused across searches.
//   - Engine drives a single search at a time. It owns the open set and the
//     resulting path; the per-node bookkeeping (G, H, F, Parent, State) lives
//     on the nodes themselves and is mutated in place.
//   - Heuristic is the only extension point between graph shapes. The default
//     ZeroHeuristic turns the engine into a uniform-cost (Dijkstra) search.
//
// Cost model:
//
//	g(next) = CostFunc(popped, next) + edge.Cost
//	        = popped.G + next.Loss + edge.Cost   (DefaultCost)
//
// Node loss and edge cost are kept apart on purpose: a tile can carry an
// intrinsic entry cost independent of the direction it is entered from.
//
// Impassable nodes:
//
//   - A node is impassable when the heuristic returns Impassable for it.
//     The engine never pushes such a node into the open set.
//   - A search whose goal is impassable fails immediately, unless start and
//     goal are the same node.
//
// Algorithm:
//
//  1. start == goal: success with the two-element path [start, goal].
//  2. Push start with G=0.
//  3. Pop the lowest F (ties: earliest (re)inserted first), mark it Closed,
//     and walk its neighbors in declaration order. Reaching the goal as a
//     neighbor ends the search; the path is rebuilt from Parent links.
//  4. An open neighbor is only updated when the new F is strictly smaller.
//  5. Closed nodes are never reopened.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) for the open set; node state lives in the arena.
//
// Reset:
//
//	The engine does not reset nodes it does not touch. Call
//	Graph.ResetSearchState before each search unless the graph owner
//	already does so (gridgraph does).
//
// Errors:
//
//   - ErrNilGraph:         NewEngine was given a nil *Graph.
//   - ErrNodeNotFound:     start, goal or an edge endpoint is outside the arena.
//   - ErrNegativeEdgeCost: AddEdge was given a negative cost.
//   - ErrReentrantSearch:  Search was called from inside a running search.
//   - ErrConcurrentSearch: Search was called while another goroutine searches.
//
// Thread safety:
//
//	An Engine and its Graph serve one search at a time. Concurrent searches
//	need independent graphs.
package astar
