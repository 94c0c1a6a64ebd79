package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocsim/nocsim/core"
)

// hasEdge reports whether g has an edge from→to, since core.Graph no
// longer exposes HasEdge directly.
func hasEdge(t *testing.T, g *core.Graph, from, to string) bool {
	t.Helper()
	neighbors, err := g.NeighborIDs(from)
	require.NoError(t, err)
	for _, id := range neighbors {
		if id == to {
			return true
		}
	}
	return false
}
