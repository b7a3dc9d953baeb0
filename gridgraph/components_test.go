// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/tilepath/astar"
)

// block builds a grid and marks the listed (x,y) tiles impassable.
func block(t *testing.T, w, h int, conn Connectivity, walls ...[2]int) *GridGraph {
	t.Helper()
	gg, err := NewGridGraph(w, h, GridOptions{Conn: conn})
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	for _, xy := range walls {
		if err := gg.SetCost(xy[0], xy[1], astar.Impassable); err != nil {
			t.Fatalf("SetCost(%v) failed: %v", xy, err)
		}
	}

	return gg
}

// TestConnectedComponents_Wall splits a 5×5 grid with a full wall on column 2.
//
//	. . # . .
//	. . # . .
//	. . # . .
//	. . # . .
//	. . # . .
//
// Expected: 2 regions of 10 tiles each.
func TestConnectedComponents_Wall(t *testing.T) {
	gg := block(t, 5, 5, Conn4, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4})

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if !reflect.DeepEqual(sizes, []int{10, 10}) {
		t.Errorf("component sizes = %v; want [10 10]", sizes)
	}
	if a, b := gg.ComponentOf(comps, 0, 0), gg.ComponentOf(comps, 4, 4); a == b || a < 0 || b < 0 {
		t.Errorf("ComponentOf corners = %d, %d; want two distinct regions", a, b)
	}
	if c := gg.ComponentOf(comps, 2, 2); c != -1 {
		t.Errorf("ComponentOf wall = %d; want -1", c)
	}
}

// TestConnectedComponents_DiagonalGap checks that Conn8 squeezes between two
// blocked tiles touching at a corner while Conn4 does not.
//
//	. # .
//	# . .
//	. . .
func TestConnectedComponents_DiagonalGap(t *testing.T) {
	walls := [][2]int{{1, 0}, {0, 1}}

	gg4 := block(t, 3, 3, Conn4, walls...)
	if n := len(gg4.ConnectedComponents()); n != 2 {
		t.Errorf("Conn4: got %d components; want 2", n)
	}

	gg8 := block(t, 3, 3, Conn8, walls...)
	if n := len(gg8.ConnectedComponents()); n != 1 {
		t.Errorf("Conn8: got %d components; want 1", n)
	}
}

// TestConnectedComponents_AllBlocked ensures a fully blocked grid has no regions.
func TestConnectedComponents_AllBlocked(t *testing.T) {
	gg := block(t, 2, 1, Conn4, [2]int{0, 0}, [2]int{1, 0})
	if comps := gg.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}

// TestConnectedComponents_AgreesWithSearch cross-checks regions with Search.
func TestConnectedComponents_AgreesWithSearch(t *testing.T) {
	gg := block(t, 6, 4, Conn4, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{4, 2}, [2]int{5, 2})
	comps := gg.ConnectedComponents()

	for a := 0; a < gg.Width*gg.Height; a += 5 {
		for b := 0; b < gg.Width*gg.Height; b += 3 {
			ax, ay := gg.Coordinate(a)
			bx, by := gg.Coordinate(b)
			if !gg.Passable(ax, ay) || !gg.Passable(bx, by) || a == b {
				continue
			}
			found, err := gg.Search(ax, ay, bx, by)
			if err != nil {
				t.Fatalf("Search error: %v", err)
			}
			same := gg.ComponentOf(comps, ax, ay) == gg.ComponentOf(comps, bx, by)
			if found != same {
				t.Errorf("(%d,%d)→(%d,%d): found=%v same region=%v", ax, ay, bx, by, found, same)
			}
		}
	}
}
