// impl_grid.go — implementation of Grid(rows, cols), the constructor that
// builds the physical tile mesh every NoC topology in this package is
// ultimately a view onto.
//
// Mesh model:
//   - 2D orthogonal grid, one vertex per tile, 4-neighborhood (east & south
//     links per tile — west/north links already exist as the neighboring
//     tile's east/south, or as their directed mirror below).
//   - Vertex IDs use the fixed "r,c" row-major scheme that wire.Net,
//     mapping.PlaceGrid, and gridgraph all key their coordinates on; this
//     is a deliberate exception to cfg.idFn to keep tile coordinates
//     explicit end to end.
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrTooFewVertices — a mesh needs at
//     least one tile).
//   - Adds vertices in row-major order with IDs "r,c" for r in [0..rows-1],
//     c in [0..cols-1].
//   - Adds a link to the east (r,c+1) and south (r+1,c) neighbor where one
//     exists. In directed graphs, also emits the reverse arc so the mesh
//     is traversable in both directions.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//     mapping.ValidateThroughput does not read these: it copies the grid's
//     edges into its own flow network weighted with per-wire bandwidth.
//
// Complexity:
//   - Time: O(rows*cols) vertices + O(rows*cols) edges (linear in tile count).
//   - Space: O(1) extra beyond the graph itself.
//
// Determinism:
//   - Stable vertex order: row-major (r asc, then c asc).
//   - Stable edge order: for each (r,c) emit east then south if present.
//   - Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import (
	"fmt"

	"github.com/nocsim/nocsim/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	tileIDFmt  = "%d,%d" // "r,c" — the fixed tile-coordinate ID scheme
)

// Grid returns a Constructor that lays out a rows×cols tile mesh: one
// vertex per tile, east and south links wiring each tile to its
// immediate neighbors. mapping.PlaceGrid builds the substrate this way
// before assigning tasks to tiles and wiring communications over it.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(tileIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		useWeight := g.Weighted()
		linkWeight := func() int64 {
			if useWeight {
				return cfg.weightFn(cfg.rng)
			}
			return 0
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(tileIDFmt, r, c)

				if c+1 < cols {
					v := fmt.Sprintf(tileIDFmt, r, c+1)
					w := linkWeight()
					if _, err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodGrid, u, v, w, err)
					}
					if g.Directed() {
						if _, err := g.AddEdge(v, u, w); err != nil {
							return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodGrid, v, u, w, err)
						}
					}
				}

				if r+1 < rows {
					v := fmt.Sprintf(tileIDFmt, r+1, c)
					w := linkWeight()
					if _, err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodGrid, u, v, w, err)
					}
					if g.Directed() {
						if _, err := g.AddEdge(v, u, w); err != nil {
							return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodGrid, v, u, w, err)
						}
					}
				}
			}
		}

		return nil
	}
}
