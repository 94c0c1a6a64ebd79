package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocsim/nocsim/core"
	"github.com/nocsim/nocsim/dfs"
)

func TestTopologicalSort_OrdersProducersBeforeConsumers(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("tile0", "tile1", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("tile1", "tile2", 0)
	require.NoError(t, err)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	require.Less(t, pos["tile0"], pos["tile1"])
	require.Less(t, pos["tile1"], pos["tile2"])
}

func TestTopologicalSort_RejectsCyclicGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("tile0", "tile1", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("tile1", "tile0", 0)
	require.NoError(t, err)

	_, err = dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_RejectsUndirectedGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := dfs.TopologicalSort(g)
	require.Error(t, err)
}
