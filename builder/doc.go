// Package builder assembles the physical tile grid as a *core.Graph.
//
// It keeps the functional-options shape used elsewhere in this module
// (BuilderOption mutating a builderConfig) but is scoped to exactly what
// mapping needs: a deterministic orthogonal Grid constructor with a
// fixed "r,c" row-major vertex ID scheme, plus the ability to override
// the RNG and per-edge weight function for a non-uniform bandwidth
// profile.
//
// Guarantees:
//
//   - Idempotent configuration: re-running Grid on a fresh graph never
//     duplicates vertices or edges.
//   - Fast-fail on invalid parameters via sentinel errors, never panics
//     at construction time.
//   - Deterministic vertex/edge emission order for a fixed configuration.
package builder
