// Package bfs is wire routing's default path-finder: breadth-first search
// over the unweighted routing grid built by wire.Net. Since every grid
// edge has the same bandwidth in the uniform-bandwidth profile, fewest-hop
// equals shortest-latency, so plain BFS is the whole router.
//
// BFS visits vertices in non-decreasing hop distance from the source and
// records a parent pointer per vertex, so BFSResult.PathTo can walk the
// tree back to reconstruct the route BFSRouter needs.
package bfs
