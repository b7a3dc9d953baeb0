package astar

import "errors"

// Sentinel errors returned by the astar engine.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to NewEngine.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeNotFound indicates a NodeID outside the graph arena.
	ErrNodeNotFound = errors.New("astar: node not found in graph")

	// ErrNegativeEdgeCost indicates an attempt to add an edge with negative cost.
	ErrNegativeEdgeCost = errors.New("astar: edge cost must be non-negative")

	// ErrReentrantSearch indicates Search was invoked from a callback of a
	// search already running on the same engine.
	ErrReentrantSearch = errors.New("astar: search already running on this goroutine")

	// ErrConcurrentSearch indicates Search was invoked while another goroutine
	// was searching with the same engine.
	ErrConcurrentSearch = errors.New("astar: concurrent search on a single engine")
)

// Impassable is the reserved loss (and heuristic result) marking a node that
// can never be entered.
const Impassable = -1

// NodeID addresses a node inside a Graph arena.
type NodeID int

// None is the NodeID used for "no node": the start's parent and the
// previous node passed to the heuristic for the start.
const None NodeID = -1

// State tracks open/closed membership of a node for the current search.
type State uint8

const (
	// Unvisited nodes have not been queued in the current search.
	Unvisited State = iota
	// Open nodes are in the open set.
	Open
	// Closed nodes are finalized and never re-examined.
	Closed
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Neighbor is a directed edge to Node with traversal Cost.
type Neighbor struct {
	Node NodeID
	Cost int
}

// Node is a graph vertex together with its per-search bookkeeping.
//
// Loss, Neighbors and Tag are structural and survive searches.
// Parent, G, H, F and State are rewritten by every search that touches the
// node and cleared by Graph.ResetSearchState.
type Node struct {
	Parent NodeID // predecessor on the current best path, or None
	G      int    // accumulated cost from start
	H      int    // heuristic estimate to goal
	F      int    // G + H, the open-set key
	Loss   int    // intrinsic cost of entering this node; Impassable blocks it
	State  State

	Neighbors []Neighbor

	// Tag carries caller metadata (gridgraph stores the row-major cell index).
	Tag int
}

// Heuristic estimates the remaining cost from current to goal.
// previous is the node being expanded, or None for the start.
// Returning Impassable marks current as non-enterable.
type Heuristic func(g *Graph, current, previous, goal NodeID) int

// ZeroHeuristic always returns 0, reducing A* to uniform-cost search.
// It never reports Impassable; pair it with a custom heuristic when nodes
// may carry the Impassable loss.
func ZeroHeuristic(*Graph, NodeID, NodeID, NodeID) int { return 0 }

// CostFunc returns the accumulated cost of stepping from previous into node,
// excluding the edge cost which the engine adds separately.
type CostFunc func(g *Graph, previous, node NodeID) int

// DefaultCost returns previous.G + node.Loss.
func DefaultCost(g *Graph, previous, node NodeID) int {
	return g.nodes[previous].G + g.nodes[node].Loss
}

// Options configures an Engine.
//
// Heuristic – remaining-cost estimate; default ZeroHeuristic.
// Cost      – node-entry accumulation; default DefaultCost.
type Options struct {
	Heuristic Heuristic
	Cost      CostFunc
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithHeuristic sets the heuristic used by the engine. A nil value keeps
// the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithCost sets the node-entry cost accumulation. A nil value keeps the
// default.
func WithCost(c CostFunc) Option {
	return func(o *Options) {
		if c != nil {
			o.Cost = c
		}
	}
}

// DefaultOptions returns Options with ZeroHeuristic and DefaultCost.
func DefaultOptions() Options {
	return Options{
		Heuristic: ZeroHeuristic,
		Cost:      DefaultCost,
	}
}
