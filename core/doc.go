// Package core holds the shared topology type behind three otherwise
// unrelated pieces of the simulator: the wire-routing grid (wire.Net),
// the tile update-order graph (mapping.ValidateUpdateOrder), and the
// throughput flow network (mapping.ValidateThroughput). All three need
// nothing more than named vertices, weighted or unweighted edges, and a
// deterministic neighbor listing, so they share one Graph implementation
// instead of three bespoke ones.
//
// Graph is intentionally narrow: one edge between any ordered pair of
// vertices, no self-loops, no per-edge direction overrides. Anything
// needing more belongs in the package that needs it, not here.
package core
