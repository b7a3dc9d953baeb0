package astar

import "fmt"

// Graph is an arena of nodes addressed by NodeID.
// Nodes are appended once and never removed.
type Graph struct {
	nodes []Node
}

// NewGraph returns an empty graph with room for capacity nodes.
func NewGraph(capacity int) *Graph {
	if capacity < 0 {
		capacity = 0
	}

	return &Graph{nodes: make([]Node, 0, capacity)}
}

// AddNode appends a node with the given loss and returns its id.
// Complexity: amortized O(1).
func (g *Graph) AddNode(loss int) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{Parent: None, Loss: loss})

	return id
}

// AddEdge appends a directed edge from → to with the given cost.
// Edges are walked in insertion order during a search.
func (g *Graph) AddEdge(from, to NodeID, cost int) error {
	if !g.Valid(from) {
		return fmt.Errorf("%w: from=%d", ErrNodeNotFound, from)
	}
	if !g.Valid(to) {
		return fmt.Errorf("%w: to=%d", ErrNodeNotFound, to)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %d→%d cost=%d", ErrNegativeEdgeCost, from, to, cost)
	}
	n := &g.nodes[from]
	n.Neighbors = append(n.Neighbors, Neighbor{Node: to, Cost: cost})

	return nil
}

// Node returns a pointer into the arena, or nil if id is invalid.
// The pointer stays valid until the next AddNode.
func (g *Graph) Node(id NodeID) *Node {
	if !g.Valid(id) {
		return nil
	}

	return &g.nodes[id]
}

// Nodes exposes the arena slice. Callers may mutate Loss in place.
func (g *Graph) Nodes() []Node { return g.nodes }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Valid reports whether id addresses a node of g.
func (g *Graph) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// ResetSearchState clears Parent, G, H, F and State on every node.
// Loss, Neighbors and Tag are left untouched.
// Complexity: O(V).
func (g *Graph) ResetSearchState() {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.Parent = None
		n.G, n.H, n.F = 0, 0, 0
		n.State = Unvisited
	}
}
