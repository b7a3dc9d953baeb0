package astar

import "container/heap"

// openItem is one open-set entry. seq is stamped on every insert and
// reposition so equal-F entries pop in (re)insertion order.
type openItem struct {
	id  NodeID
	f   int
	seq uint64
}

// openHeap is a min-heap of openItem ordered by (f, seq). pos maps a NodeID
// to its current heap index (or -1) so a decrease-key is a heap.Fix.
type openHeap struct {
	items []openItem
	pos   []int
}

func (h openHeap) Len() int { return len(h.items) }

func (h openHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

func (h openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].id] = i
	h.pos[h.items[j].id] = j
}

func (h *openHeap) Push(x interface{}) {
	it := x.(openItem)
	h.pos[it.id] = len(h.items)
	h.items = append(h.items, it)
}

func (h *openHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	h.pos[it.id] = -1

	return it
}

// openSet wraps openHeap with the sequence counter.
type openSet struct {
	h   openHeap
	seq uint64
}

// reset empties the set and sizes the position index for n nodes.
func (s *openSet) reset(n int) {
	for _, it := range s.h.items {
		s.h.pos[it.id] = -1
	}
	s.h.items = s.h.items[:0]
	s.seq = 0
	if len(s.h.pos) < n {
		grown := make([]int, n)
		copy(grown, s.h.pos)
		for i := len(s.h.pos); i < n; i++ {
			grown[i] = -1
		}
		s.h.pos = grown
	}
}

func (s *openSet) len() int { return s.h.Len() }

func (s *openSet) push(id NodeID, f int) {
	s.seq++
	heap.Push(&s.h, openItem{id: id, f: f, seq: s.seq})
}

func (s *openSet) pop() NodeID {
	return heap.Pop(&s.h).(openItem).id
}

// update repositions id under its new key, as if removed and re-inserted.
func (s *openSet) update(id NodeID, f int) {
	i := s.h.pos[id]
	if i < 0 {
		s.push(id, f)
		return
	}
	s.seq++
	s.h.items[i].f = f
	s.h.items[i].seq = s.seq
	heap.Fix(&s.h, i)
}
