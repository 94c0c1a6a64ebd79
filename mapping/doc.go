// Package mapping places a flat list of tiles onto a 2-D grid, wires them
// together into communications, and derives the per-tick update order the
// engine iterates. It also offers pre-flight validation: connectivity of
// same-task tile groups, acyclicity of the derived update graph, and a
// max-flow feasibility check against declared wire bandwidth.
package mapping
