// Package flow backs mapping.ValidateThroughput: it runs max-flow over a
// network whose edge capacities are per-wire bandwidth, from a super
// source tied to every communication's origin tile to a super sink tied
// to every destination, and reports whether the substrate can carry the
// aggregate declared demand.
//
// Three algorithms are offered, all on *core.Graph:
//
//   - FordFulkerson: DFS for any augmenting path. O(E·F) where F is the
//     total flow pushed; fine for the small per-run validation networks
//     this package actually sees.
//   - EdmondsKarp: BFS for a shortest augmenting path each round, the one
//     ValidateThroughput calls. O(V·E²) worst case but polynomial
//     regardless of capacity magnitude.
//   - Dinic: level-graph plus blocking flow via DFS. O(E·sqrt(V)) on
//     unit-capacity networks; faster than the other two once a topology
//     has many tiles and wires.
//
// FlowOptions.Epsilon treats capacities at or below it as absent when the
// capacity map is built, which matters because ValidateThroughput seeds
// edge weights from int64 bandwidth values that round-trip through
// float64 during accumulation. All three entry points share one
// signature:
//
//	func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (maxFlow float64, residual *core.Graph, err error)
//
// and return a residual graph whose edges are the capacity left on each
// direction after the max flow is pushed.
package flow
