package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/nocsim/nocsim/core"
)

// Dijkstra computes shortest distances from Options.Source to every
// reachable vertex in g, used to pick the minimum-latency wire route
// when per-wire bandwidth (and so edge weight) is not uniform. If
// WithReturnPath was given, the returned predecessor map lets the
// caller walk the route back to the source.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := defaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s->%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, cfg)
	r.run()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

type runner struct {
	g       *core.Graph
	source  string
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		source:  cfg.Source,
		dist:    make(map[string]int64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})
	return r
}

func (r *runner) run() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale lazy-decrease-key entry from an earlier, larger push
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax pushes a new heap entry per improved neighbor rather than
// mutating one in place, since container/heap has no decrease-key: the
// stale, larger-distance entries left behind are skipped in run() via
// visited.
func (r *runner) relax(u string) {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return // u was validated present in Dijkstra; a failure here means no edges
	}
	for _, e := range neighbors {
		if e.Directed && e.From != u {
			continue
		}
		v := e.To
		if !e.Directed && v == u {
			v = e.From
		}
		newDist := r.dist[u] + e.Weight
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

type nodeItem struct {
	id   string
	dist int64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
