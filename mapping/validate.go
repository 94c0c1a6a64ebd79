package mapping

import (
	"fmt"

	"github.com/nocsim/nocsim/communication"
	"github.com/nocsim/nocsim/core"
	"github.com/nocsim/nocsim/dfs"
	"github.com/nocsim/nocsim/flow"
	"github.com/nocsim/nocsim/gridgraph"
	"github.com/nocsim/nocsim/tile"
	"github.com/nocsim/nocsim/wire"
)

// largeTopologyVertexCount is the substrate size past which Dinic's
// O(E*sqrt(V)) bound outperforms EdmondsKarp's O(V*E^2) in ValidateThroughput.
const largeTopologyVertexCount = 256

// ValidateConnectivity checks that every task's tiles occupy a single
// grid-connected region: no task's placement is split across islands the
// routing substrate cannot otherwise bridge. It treats each task id as a
// distinct "land" value on the grid (offset by 1 so task id 0 is not
// confused with the unplaced "water" value) and requires exactly one
// connected component per task. When a task is split, the error reports
// how many non-task cells would need to be cleared to join its first two
// fragments in component order, via gridgraph.ExpandIsland.
func ValidateConnectivity(rows, cols int, tiles []*tile.Tile) error {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
	}
	taskCount := make(map[int]int)
	for _, t := range tiles {
		values[t.Position.Row][t.Position.Col] = t.TaskID + 1
		taskCount[t.TaskID]++
	}

	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		return fmt.Errorf("mapping: %w", err)
	}
	components := gg.ConnectedComponents()

	for taskID, count := range taskCount {
		comps := components[taskID+1]
		if len(comps) != 1 {
			_, clear, expandErr := gg.ExpandIsland(comps[0], comps[1])
			if expandErr != nil {
				return fmt.Errorf("mapping: task %d spans %d components: %w", taskID, len(comps), ErrDisconnectedTask)
			}
			return fmt.Errorf("mapping: task %d spans %d components, first two need %d obstacle cells cleared to join: %w",
				taskID, len(comps), clear, ErrDisconnectedTask)
		}
		if len(comps[0]) != count {
			return fmt.Errorf("mapping: task %d: %d tiles but component covers %d cells: %w",
				taskID, count, len(comps[0]), ErrDisconnectedTask)
		}
	}
	return nil
}

// ValidateUpdateOrder builds the producer->consumer dependency graph
// implied by comms and rejects any mapping whose update order would need
// to revisit a tile already advanced this tick.
func ValidateUpdateOrder(tiles []*tile.Tile, comms []*communication.Communication) ([]string, error) {
	g := core.NewGraph(core.WithDirected(true))
	for _, t := range tiles {
		if err := g.AddVertex(fmt.Sprintf("%d", t.ID)); err != nil {
			return nil, fmt.Errorf("mapping: %w", err)
		}
	}
	for _, c := range comms {
		from := fmt.Sprintf("%d", c.ProducerID)
		to := fmt.Sprintf("%d", c.ConsumerID)
		if _, err := g.AddEdge(from, to, 0); err != nil {
			return nil, fmt.Errorf("mapping: %w", err)
		}
	}

	hasCycle, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return nil, fmt.Errorf("mapping: %w", err)
	}
	if hasCycle {
		return nil, fmt.Errorf("mapping: cycle %v: %w", cycles, ErrUpdateCycle)
	}
	return dfs.TopologicalSort(g)
}

// ValidateThroughput pre-flights the wire plan: it builds a flow network
// whose edge capacities are the net's per-wire bandwidth, ties a super
// source to every distinct communication origin with that origin's total
// declared demand, ties a super sink similarly on the consumer side, and
// requires max-flow to cover the aggregate demand. demand maps
// communication id to its required bits-per-tick rate; communications
// absent from demand (or mapped to ≤0) are treated as unconstrained and
// skipped.
func ValidateThroughput(net *wire.Net, bandwidth int64, comms []*communication.Communication, demand map[int]float64) (float64, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range net.Graph().Vertices() {
		if err := g.AddVertex(v); err != nil {
			return 0, fmt.Errorf("mapping: %w", err)
		}
	}
	for _, e := range net.Graph().Edges() {
		if _, err := g.AddEdge(e.From, e.To, bandwidth); err != nil {
			return 0, fmt.Errorf("mapping: %w", err)
		}
	}

	const source, sink = "S", "T"
	if err := g.AddVertex(source); err != nil {
		return 0, fmt.Errorf("mapping: %w", err)
	}
	if err := g.AddVertex(sink); err != nil {
		return 0, fmt.Errorf("mapping: %w", err)
	}

	srcDemand := make(map[string]int64)
	dstDemand := make(map[string]int64)
	var total float64
	for _, c := range comms {
		d, ok := demand[c.ID]
		if !ok || d <= 0 {
			continue
		}
		path := c.Path()
		if len(path) < 2 {
			continue
		}
		total += d
		srcDemand[path[0].VertexID()] += int64(d)
		dstDemand[path[len(path)-1].VertexID()] += int64(d)
	}
	for v, cap := range srcDemand {
		if _, err := g.AddEdge(source, v, cap); err != nil {
			return 0, fmt.Errorf("mapping: %w", err)
		}
	}
	for v, cap := range dstDemand {
		if _, err := g.AddEdge(v, sink, cap); err != nil {
			return 0, fmt.Errorf("mapping: %w", err)
		}
	}

	// Dinic's better asymptotic bound pays off once the substrate has
	// enough tiles that EdmondsKarp's repeated O(E) BFS sweeps dominate.
	runFlow := flow.EdmondsKarp
	if len(g.Vertices()) > largeTopologyVertexCount {
		runFlow = flow.Dinic
	}
	maxFlow, _, err := runFlow(g, source, sink, flow.DefaultOptions())
	if err != nil {
		return 0, fmt.Errorf("mapping: %w", err)
	}
	if maxFlow+1e-9 < total {
		return maxFlow, fmt.Errorf("mapping: max flow %.2f below demand %.2f: %w", maxFlow, total, ErrInsufficientFlow)
	}
	return maxFlow, nil
}
