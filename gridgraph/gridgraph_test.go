package gridgraph

import "testing"

func TestNewGridGraph_RejectsEmptyGrid(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
	}{
		{"NoRows", [][]int{}},
		{"NoColumns", [][]int{{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGridGraph(tc.grid, DefaultGridOptions()); err != ErrEmptyGrid {
				t.Errorf("NewGridGraph(%v) error = %v; want ErrEmptyGrid", tc.grid, err)
			}
		})
	}
}

func TestNewGridGraph_RejectsNonRectangular(t *testing.T) {
	grid := [][]int{{1, 2}, {3}}
	if _, err := NewGridGraph(grid, DefaultGridOptions()); err != ErrNonRectangular {
		t.Errorf("NewGridGraph error = %v; want ErrNonRectangular", err)
	}
}

func TestNewGridGraph_DeepCopiesInput(t *testing.T) {
	grid := [][]int{{1, 0}, {0, 1}}
	gg, err := NewGridGraph(grid, DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	grid[0][0] = 9
	if gg.CellValues[0][0] != 1 {
		t.Errorf("mutating caller's slice changed GridGraph: got %d; want 1", gg.CellValues[0][0])
	}
}

func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := NewGridGraph(grid, DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

func TestCoordinate_RoundTripsWithIndex(t *testing.T) {
	grid := [][]int{
		{0, 0, 0},
		{0, 0, 0},
	}
	gg, err := NewGridGraph(grid, DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			gotX, gotY := gg.Coordinate(gg.index(x, y))
			if gotX != x || gotY != y {
				t.Errorf("Coordinate(index(%d,%d)) = (%d,%d); want (%d,%d)", x, y, gotX, gotY, x, y)
			}
		}
	}
}

func TestNeighborOffsets_MatchesConnectivity(t *testing.T) {
	grid := [][]int{{0}}
	opts4 := DefaultGridOptions()
	opts4.Conn = Conn4
	gg4, _ := NewGridGraph(grid, opts4)
	if n := len(gg4.NeighborOffsets()); n != 4 {
		t.Errorf("Conn4 offsets = %d; want 4", n)
	}

	opts8 := DefaultGridOptions()
	opts8.Conn = Conn8
	gg8, _ := NewGridGraph(grid, opts8)
	if n := len(gg8.NeighborOffsets()); n != 8 {
		t.Errorf("Conn8 offsets = %d; want 8", n)
	}
}
