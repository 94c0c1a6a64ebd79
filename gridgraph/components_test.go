package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

func gridGraph(t *testing.T, grid [][]int, conn Connectivity) *GridGraph {
	t.Helper()
	opts := DefaultGridOptions()
	opts.Conn = conn
	gg, err := NewGridGraph(grid, opts)
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	return gg
}

// TestConnectedComponents_Simple4 checks orthogonal connectivity on a grid
// with one free value split into two disjoint regions.
//
// Grid (1 = free, 0 = blocked):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: regions of sizes 4 and 2 under value 1.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg := gridGraph(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, Conn4)

	comps := gg.ConnectedComponents()
	regions := comps[1]
	if len(regions) != 2 {
		t.Fatalf("got %d regions for value 1; want 2", len(regions))
	}

	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 uses Conn8 so diagonal-only touches merge.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// All nine 1s connect through diagonal hops into one region.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	gg := gridGraph(t, [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}, Conn8)

	comps := gg.ConnectedComponents()
	regions := comps[1]
	if len(regions) != 1 {
		t.Fatalf("got %d regions; want 1", len(regions))
	}
	if size := len(regions[0]); size != 9 {
		t.Errorf("region size = %d; want 9", size)
	}
}

func TestConnectedComponents_EmptyAndSingleCell(t *testing.T) {
	allBlocked := gridGraph(t, [][]int{{0, 0}, {0, 0}}, Conn4)
	if comps := allBlocked.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-blocked: got %d value groups; want 0", len(comps))
	}

	oneFree := gridGraph(t, [][]int{{0, 1}}, Conn4)
	comps := oneFree.ConnectedComponents()
	if len(comps[1]) != 1 || len(comps[1][0]) != 1 {
		t.Fatalf("single free cell: got %v; want one region of size 1", comps)
	}
}

// TestConnectedComponents_GroupsByValue confirms distinct free values never
// merge into the same region even when adjacent.
func TestConnectedComponents_GroupsByValue(t *testing.T) {
	gg := gridGraph(t, [][]int{{1, 2}}, Conn4)
	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d value groups; want 2", len(comps))
	}
	if len(comps[1]) != 1 || len(comps[2]) != 1 {
		t.Errorf("expected one region per value, got %v", comps)
	}
}
