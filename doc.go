// Package tilepath is an A* path-finding toolkit for weighted tile grids,
// from a generic index-addressed search engine up to a world-coordinate
// map handle, HCL scenario files and an HTTP surface.
//
// What is inside?
//
//	• Search engine: A* over an arena of nodes with per-node loss, per-edge
//	  cost and a pluggable heuristic. Impassable nodes are reported by the
//	  heuristic itself.
//	• Grid adapter: width×height tiles wired 4- or 8-connected, straight
//	  steps cost 10 and diagonal steps 14, Manhattan×10 heuristic.
//	• Map facade: one grid placed at a world offset, clamped searches,
//	  range-checked cost updates, path read-out by index.
//	• Region analysis: passable components and the fewest blocked tiles
//	  to clear between two of them.
//
// Packages:
//
//	astar/         Graph, Engine, Heuristic, open-set heap
//	gridgraph/     GridGraph, Conn4/Conn8, ConnectedComponents, ExpandIsland
//	tilemap/       Map: Create, SetCost, Search, PathPoint, Release
//	cmd/tilepath/  run scenario queries or serve the map over HTTP
//
// Quick ASCII example (5×5, wall on column 2 rows 1..4):
//
//	. . . . .
//	. . # . .
//	. . # . .
//	. . # . .
//	S . # . G
//
// S → G is routed over row 0: 13 tiles, cost 120.
//
//	go get github.com/katalvlaran/tilepath
package tilepath
