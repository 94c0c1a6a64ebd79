// Package gridgraph backs mapping.ValidateConnectivity: it treats the tile
// floorplan's obstacle mask as a 2D grid and answers whether every free
// cell can reach every other, and if not, how cheaply that could be fixed.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - ConnectedComponents groups free cells (value >= LandThreshold) into regions.
//   - ExpandIsland finds the cheapest obstacle-clearing path linking two regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:          O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered free of obstacles.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: empty src or dst region passed to ExpandIsland.
//   - ErrNoPath: no conversion path exists between specified regions.
package gridgraph
