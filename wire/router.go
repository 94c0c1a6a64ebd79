package wire

import (
	"fmt"

	"github.com/nocsim/nocsim/bfs"
	"github.com/nocsim/nocsim/dijkstra"
)

// Router computes the wire path between two grid positions over a Net's
// routing graph. Mapping selects one implementation per run via
// simconfig.RunConfig.Routing.
type Router interface {
	Route(n *Net, from, to Position) ([]Position, error)
}

// BFSRouter is the default router: grids are unweighted for the uniform
// bandwidth profile, so breadth-first search already yields the shortest
// (fewest-hop) path.
type BFSRouter struct{}

// Route implements Router using bfs.BFS.
func (BFSRouter) Route(n *Net, from, to Position) ([]Position, error) {
	result, err := bfs.BFS(n.graph, from.VertexID())
	if err != nil {
		return nil, fmt.Errorf("wire: bfs route %s->%s: %w", from.VertexID(), to.VertexID(), err)
	}
	ids, err := result.PathTo(to.VertexID())
	if err != nil {
		return nil, fmt.Errorf("%s->%s: %w", from.VertexID(), to.VertexID(), ErrNoRoute)
	}
	return idsToPositions(ids)
}

// DijkstraRouter routes over a weighted grid graph, where edge weight is a
// latency proxy derived from per-wire bandwidth. Use for the
// heterogeneous-bandwidth profile where hop count alone is not the
// shortest transfer.
type DijkstraRouter struct{}

// Route implements Router using dijkstra.Dijkstra.
func (DijkstraRouter) Route(n *Net, from, to Position) ([]Position, error) {
	_, prev, err := dijkstra.Dijkstra(n.graph, dijkstra.Source(from.VertexID()), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("wire: dijkstra route %s->%s: %w", from.VertexID(), to.VertexID(), err)
	}
	ids, ok := reconstructPath(prev, from.VertexID(), to.VertexID())
	if !ok {
		return nil, fmt.Errorf("%s->%s: %w", from.VertexID(), to.VertexID(), ErrNoRoute)
	}
	return idsToPositions(ids)
}

func reconstructPath(prev map[string]string, source, dest string) ([]string, bool) {
	if source == dest {
		return []string{source}, true
	}
	path := []string{dest}
	cur := dest
	for cur != source {
		p, ok := prev[cur]
		if !ok {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

func idsToPositions(ids []string) ([]Position, error) {
	positions := make([]Position, 0, len(ids))
	for _, id := range ids {
		p, err := ParsePosition(id)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}
