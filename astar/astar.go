package astar

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Engine runs A* searches over a single Graph.
//
// An Engine is not safe for concurrent use. Misuse is detected rather than
// serialized: see ErrReentrantSearch and ErrConcurrentSearch.
type Engine struct {
	g       *Graph
	options Options

	open     openSet
	path     []NodeID
	cost     int
	expanded int

	owner atomic.Int64 // goroutine id of the running search, 0 when idle
}

// NewEngine returns an engine bound to g.
// Returns ErrNilGraph if g is nil.
func NewEngine(g *Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{g: g, options: cfg}, nil
}

// Graph returns the graph the engine searches.
func (e *Engine) Graph() *Graph { return e.g }

// Search looks for a minimum-cost path from start to goal.
//
// It returns (true, nil) when a path was found, (false, nil) when the open
// set drained without reaching goal, and a non-nil error only for invalid
// node ids or misuse of the single-search contract.
//
// The previous path is discarded on entry, including when an invalid id is
// rejected. A call refused by the single-search guard leaves the running
// search's state alone. Node bookkeeping outside the
// nodes reached by this search is not reset; see Graph.ResetSearchState.
func (e *Engine) Search(start, goal NodeID) (bool, error) {
	gid := goid.Get()
	if !e.owner.CompareAndSwap(0, gid) {
		if e.owner.Load() == gid {
			return false, ErrReentrantSearch
		}

		return false, ErrConcurrentSearch
	}
	defer e.owner.Store(0)

	e.Reset()

	g := e.g
	if !g.Valid(start) {
		return false, fmt.Errorf("%w: start=%d", ErrNodeNotFound, start)
	}
	if !g.Valid(goal) {
		return false, fmt.Errorf("%w: goal=%d", ErrNodeNotFound, goal)
	}

	e.open.reset(g.Len())

	// Degenerate path keeps both endpoints.
	if start == goal {
		e.path = append(e.path, start, goal)
		return true, nil
	}

	heur := e.options.Heuristic
	if heur(g, goal, None, goal) == Impassable {
		return false, nil
	}

	s := &g.nodes[start]
	s.Parent = None
	s.G = 0
	s.H = heur(g, start, None, goal)
	if s.H == Impassable {
		s.H = 0
	}
	s.F = s.G + s.H
	s.State = Open
	e.open.push(start, s.F)

	for e.open.len() > 0 {
		cur := e.open.pop()
		g.nodes[cur].State = Closed
		e.expanded++

		if e.expand(cur, goal) {
			e.buildPath(goal)
			return true, nil
		}
	}

	return false, nil
}

// expand relaxes every outgoing edge of cur and reports whether goal was
// reached.
func (e *Engine) expand(cur, goal NodeID) bool {
	g := e.g
	heur, cost := e.options.Heuristic, e.options.Cost
	cn := &g.nodes[cur]

	var (
		nb  Neighbor
		nn  *Node
		h   int
		gv  int
		f   int
		nxt NodeID
	)
	for _, nb = range cn.Neighbors {
		nxt = nb.Node
		nn = &g.nodes[nxt]

		if nxt == goal {
			nn.G = cost(g, cur, nxt) + nb.Cost
			nn.H = heur(g, nxt, cur, goal)
			nn.F = nn.G + nn.H
			nn.Parent = cur

			return true
		}

		if nn.State == Closed {
			continue
		}

		h = heur(g, nxt, cur, goal)
		if h == Impassable {
			// The expanding node is closed, never the blocked neighbor.
			cn.State = Closed
			continue
		}

		gv = cost(g, cur, nxt) + nb.Cost
		f = gv + h

		switch nn.State {
		case Open:
			if f < nn.F {
				nn.Parent = cur
				nn.G, nn.H, nn.F = gv, h, f
				e.open.update(nxt, f)
			}
		default:
			nn.Parent = cur
			nn.G, nn.H, nn.F = gv, h, f
			nn.State = Open
			e.open.push(nxt, f)
		}
	}

	return false
}

// buildPath walks Parent links back from goal and stores start→goal.
func (e *Engine) buildPath(goal NodeID) {
	g := e.g
	limit := g.Len()
	for at := goal; at != None && len(e.path) <= limit; at = g.nodes[at].Parent {
		e.path = append(e.path, at)
	}
	for i, j := 0, len(e.path)-1; i < j; i, j = i+1, j-1 {
		e.path[i], e.path[j] = e.path[j], e.path[i]
	}
	e.cost = g.nodes[goal].G
}

// Reset discards the last path together with its cost and expansion count.
func (e *Engine) Reset() {
	e.path = e.path[:0]
	e.cost = 0
	e.expanded = 0
}

// Path returns the node sequence of the last successful search, start first.
// The slice is owned by the engine and is overwritten by the next Search.
// It is empty after a failed search.
func (e *Engine) Path() []NodeID { return e.path }

// PathCost returns the accumulated G of the goal for the last successful
// search, 0 for the identity path or after a failure.
func (e *Engine) PathCost() int { return e.cost }

// Expanded returns how many nodes the last search popped from the open set.
func (e *Engine) Expanded() int { return e.expanded }

// Blocking wraps h so that any node whose Loss is Impassable is reported as
// Impassable. Use it to give ZeroHeuristic (or any custom estimate) the
// impassable-node semantics.
func Blocking(h Heuristic) Heuristic {
	if h == nil {
		h = ZeroHeuristic
	}

	return func(g *Graph, current, previous, goal NodeID) int {
		if g.nodes[current].Loss == Impassable {
			return Impassable
		}

		return h(g, current, previous, goal)
	}
}
