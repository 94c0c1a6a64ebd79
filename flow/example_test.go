package flow_test

import (
	"context"
	"fmt"

	"github.com/nocsim/nocsim/core"
	"github.com/nocsim/nocsim/flow"
)

// bandwidthNetwork builds a small substrate graph shaped like the one
// ValidateThroughput constructs: a super source "S" tied to every
// communication's origin tile, a super sink "T" tied to every
// destination, and per-wire bandwidth as edge weight.
//
//	S→t0 (5)        t0→t1 (8)
//	S→t2 (15)       t1→t3 (10)
//	t2→t3 (5)       t2→t4 (10)
//	t4→t3 (10)      t3→T (10)
//	t4→T (5)
//
// The bottleneck at t3→T and t4→T caps deliverable throughput at 15
// regardless of which algorithm computes it.
func bandwidthNetwork() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "t0", 5)
	_, _ = g.AddEdge("S", "t2", 15)
	_, _ = g.AddEdge("t0", "t1", 8)
	_, _ = g.AddEdge("t1", "t3", 10)
	_, _ = g.AddEdge("t2", "t3", 5)
	_, _ = g.AddEdge("t2", "t4", 10)
	_, _ = g.AddEdge("t4", "t3", 10)
	_, _ = g.AddEdge("t3", "T", 10)
	_, _ = g.AddEdge("t4", "T", 5)
	return g
}

// ExampleFordFulkerson_bandwidth shows FordFulkerson computing deliverable
// throughput across the example substrate.
func ExampleFordFulkerson_bandwidth() {
	g := bandwidthNetwork()
	opts := flow.DefaultOptions()
	opts.Ctx = context.Background()

	maxFlow, _, err := flow.FordFulkerson(g, "S", "T", opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(maxFlow)
	// Output:
	// 15
}

// ExampleEdmondsKarp_bandwidth shows EdmondsKarp computing the same result
// via shortest-augmenting-path BFS, the algorithm ValidateThroughput uses
// by default.
func ExampleEdmondsKarp_bandwidth() {
	g := bandwidthNetwork()
	opts := flow.DefaultOptions()
	opts.Ctx = context.Background()

	maxFlow, _, err := flow.EdmondsKarp(g, "S", "T", opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(maxFlow)
	// Output:
	// 15
}

// ExampleDinic_bandwidth shows Dinic computing the same result via
// level-graph blocking flow, the algorithm ValidateThroughput switches to
// on large topologies.
func ExampleDinic_bandwidth() {
	g := bandwidthNetwork()
	opts := flow.DefaultOptions()
	opts.Ctx = context.Background()

	maxFlow, _, err := flow.Dinic(g, "S", "T", opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(maxFlow)
	// Output:
	// 15
}
