// Package wire models the physical interconnect: a Position on the tile
// grid, a Wire linking two adjacent positions, and a Net aggregating every
// wire with whole-path state/set/transfer-time queries. In opaque mode a
// wire carries at most one active path at a time; in transparent mode
// wires never block, which is how the engine computes a conflict-free
// lower bound. Routing between two positions is delegated to a Router,
// backed by the shared grid topology (bfs.BFS by default, dijkstra.Dijkstra
// for heterogeneous-bandwidth profiles).
package wire
