package flow

import (
	"math"

	"github.com/nocsim/nocsim/core"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm: repeated BFS for the shortest (fewest-edge)
// augmenting path in the residual network.
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Validate that source and sink exist in g (O(1)).
//  3. Build the initial capacity map via buildCapMap (O(V + E)).
//  4. Repeat: BFS for an augmenting path, augment by its bottleneck,
//     until no augmenting path remains.
//  5. Construct the final residual graph via buildCoreResidualFromCapMap.
//
// Complexity: O(V · E²) worst case.
// Memory:     O(V + E) for capMap and BFS bookkeeping.
func EdmondsKarp(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, residualGraph *core.Graph, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	capMap, err := buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		path, bottleneck := bfsAugmentingPath(capMap, source, sink)
		if len(path) == 0 || bottleneck <= opts.Epsilon {
			break
		}

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottleneck
			capMap[v][u] += bottleneck
		}
		maxFlow += bottleneck
	}

	residualGraph, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}

// bfsAugmentingPath finds the shortest augmenting path in capMap from
// source to sink, returning the vertex sequence and its bottleneck
// capacity. Returns (nil, 0) when no path exists.
func bfsAugmentingPath(capMap map[string]map[string]float64, source, sink string) ([]string, float64) {
	parent := make(map[string]string, len(capMap))
	bottleneck := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v, cap := range capMap[u] {
			if visited[v] || cap <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if cap < bottleneck[u] {
				bottleneck[v] = cap
			} else {
				bottleneck[v] = bottleneck[u]
			}
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append([]string{p}, path...)
					cur = p
				}
				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
