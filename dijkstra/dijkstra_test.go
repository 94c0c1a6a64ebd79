package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocsim/nocsim/core"
	"github.com/nocsim/nocsim/dijkstra"
)

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("a"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("a"))
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("missing"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func gridWithLatency(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("0,0", "0,1", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("0,1", "0,2", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("0,0", "1,0", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("1,0", "0,2", 1)
	require.NoError(t, err)
	return g
}

func TestDijkstra_PicksMinimumLatencyRouteOverFewestHops(t *testing.T) {
	g := gridWithLatency(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("0,0"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.EqualValues(t, 3, dist["0,2"])
	require.Equal(t, "1,0", prev["0,2"])
}

func TestDijkstra_UnreachableVertexStaysAtMaxInt64(t *testing.T) {
	g := gridWithLatency(t)
	require.NoError(t, g.AddVertex("9,9"))
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("0,0"))
	require.NoError(t, err)
	require.EqualValues(t, math.MaxInt64, dist["9,9"])
}

func TestDijkstra_RejectsNegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", -1)
	require.NoError(t, err)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}
