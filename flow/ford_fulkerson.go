package flow

import (
	"math"

	"github.com/nocsim/nocsim/core"
)

// FordFulkerson computes the maximum flow from source to sink in a
// capacity network using repeated DFS for any augmenting path.
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Validate that source and sink exist in g (O(1)).
//  3. Build the initial capacity map via buildCapMap (O(V + E)).
//  4. Repeat: DFS for any augmenting path, augment by its bottleneck,
//     until no augmenting path remains.
//  5. Construct the final residual graph via buildCoreResidualFromCapMap.
//
// Complexity: O(E · F) where F is the total flow pushed.
// Memory:     O(V + E) for capMap and DFS bookkeeping.
//
// Use Ford–Fulkerson for simplicity and moderate capacities; prefer
// EdmondsKarp or Dinic for stronger worst-case guarantees.
func FordFulkerson(
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

		visited := make(map[string]bool, len(capMap))
		path, bottleneck := dfsFindPath(capMap, source, sink, visited, math.Inf(1), opts.Epsilon)
		if len(path) == 0 {
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

// dfsFindPath performs a DFS in the capacity map to locate any
// source→sink path with capacity above eps. Returns the path and its
// bottleneck flow; an empty path means no augmenting path was found.
func dfsFindPath(
	capMap map[string]map[string]float64,
	u, sink string,
	visited map[string]bool,
	available float64,
	eps float64,
) ([]string, float64) {
	if u == sink {
		return []string{sink}, available
	}
	visited[u] = true
	for v, capUV := range capMap[u] {
		if visited[v] || capUV <= eps {
			continue
		}
		bottleneck := available
		if capUV < bottleneck {
			bottleneck = capUV
		}
		path, flow := dfsFindPath(capMap, v, sink, visited, bottleneck, eps)
		if len(path) > 0 {
			return append([]string{u}, path...), flow
		}
	}
	return nil, 0
}
