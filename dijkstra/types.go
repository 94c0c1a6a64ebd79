// Package dijkstra backs DijkstraRouter, wire routing's path-finder for
// the heterogeneous-bandwidth profile, where per-wire latency varies and
// hop count alone no longer picks the fastest route.
package dijkstra

import "errors"

var (
	// ErrEmptySource indicates the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")
	// ErrNilGraph indicates a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")
	// ErrUnweightedGraph indicates the graph was not built with core.WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")
	// ErrVertexNotFound indicates the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
	// ErrNegativeWeight indicates a negative edge weight, which Dijkstra cannot handle.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures one Dijkstra run.
type Options struct {
	Source     string
	ReturnPath bool
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath requests the predecessor map needed to reconstruct a
// route; without it Dijkstra only computes distances.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

func defaultOptions(source string) Options {
	return Options{Source: source}
}
