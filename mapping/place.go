package mapping

import (
	"fmt"

	"github.com/nocsim/nocsim/builder"
	"github.com/nocsim/nocsim/tile"
	"github.com/nocsim/nocsim/wire"
)

// PlaceGrid assigns tiles row-major positions on a rows×cols grid, forces
// the last tile of every task (by placement order, tiles grouped
// contiguously by TaskID) to the sentinel sink [-1] — each task's final
// tile has nowhere left to forward to within that task — builds the
// underlying grid graph, and wraps it as a wire.Net at the given
// per-wire bandwidth.
func PlaceGrid(rows, cols int, bandwidth int64, tiles []*tile.Tile) (*wire.Net, error) {
	if len(tiles) > rows*cols {
		return nil, fmt.Errorf("mapping: %d tiles on a %dx%d grid: %w", len(tiles), rows, cols, ErrTooManyTiles)
	}

	for i, t := range tiles {
		t.Position = wire.Position{Row: i / cols, Col: i % cols}
	}
	for i, t := range tiles {
		if i == len(tiles)-1 || tiles[i+1].TaskID != t.TaskID {
			t.TargetTileIDs = []int{-1}
		}
	}

	g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	if err != nil {
		return nil, fmt.Errorf("mapping: build grid graph: %w", err)
	}

	net, err := wire.NewNet(g, rows, cols, bandwidth)
	if err != nil {
		return nil, fmt.Errorf("mapping: build wire net: %w", err)
	}
	return net, nil
}

// DefaultRouter returns the routing strategy BuildCommunications falls
// back to when the caller has no reason to prefer Dijkstra: plain BFS is
// sufficient and cheaper whenever wires carry uniform bandwidth.
func DefaultRouter() wire.Router {
	return wire.BFSRouter{}
}
