package gridgraph_test

import (
	"fmt"
	"sort"

	"github.com/nocsim/nocsim/gridgraph"
)

// ExampleGridGraph_ConnectedComponents groups free cells of the floorplan's
// obstacle mask into their connected regions, one region list per cell
// value.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{0, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	values := make([]int, 0, len(comps))
	for v := range comps {
		values = append(values, v)
	}
	sort.Ints(values)

	for _, v := range values {
		for _, region := range comps[v] {
			fmt.Printf("value %d, size %d\n", v, len(region))
		}
	}

	// Output:
	// value 1, size 4
	// value 2, size 5
}

// ExampleGridGraph_ExpandIsland computes the cheapest way to clear obstacles
// linking two regions of the floorplan.
func ExampleGridGraph_ExpandIsland() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{0, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	_, cost, _ := gg.ExpandIsland(comps[1][0], comps[2][0])

	fmt.Printf("clear %d obstacle cells to link the two regions\n", cost)
	// Output:
	// clear 1 obstacle cells to link the two regions
}
