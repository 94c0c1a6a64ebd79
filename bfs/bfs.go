package bfs

import (
	"errors"
	"fmt"

	"github.com/nocsim/nocsim/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartVertexNotFound is returned when the start position is absent
// from the routing grid.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// ErrWeightedGraph is returned when BFS is run on a weighted grid; use
// dijkstra.Dijkstra for those instead.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// BFSResult is one traversal's outcome: the order positions were visited
// in, their hop distance from the source, and the spanning tree needed to
// reconstruct a route with PathTo.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// BFS explores g from startID in hop order, the way a flood fill spreads
// out across the routing grid one tick at a time.
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := len(g.Vertices())
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  map[string]int{startID: 0},
		Parent: make(map[string]string, n),
	}

	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		nextDepth := res.Depth[id] + 1
		for _, nbr := range neighbors {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = nextDepth
			res.Parent[nbr] = id
			queue = append(queue, nbr)
		}
	}
	return res, nil
}

// PathTo reconstructs the route from the BFS source to dest by walking
// Parent pointers backward, then reversing.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{dest}
	cur := dest
	for {
		parent, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, parent)
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
