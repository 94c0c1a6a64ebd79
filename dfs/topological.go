package dfs

import (
	"fmt"

	"github.com/nocsim/nocsim/core"
)

// TopologicalSort orders a directed acyclic tile dependency graph so that
// every producer tile appears before the consumers it feeds, via
// post-order depth-first search followed by a reversal. Returns
// ErrCycleDetected if g is not acyclic.
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dfs: TopologicalSort requires a directed graph")
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	order := make([]string, 0, len(verts))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case gray:
			return ErrCycleDetected
		case black:
			return nil
		}
		state[id] = gray

		neighbors, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors(%q): %w", id, err)
		}
		for _, e := range neighbors {
			if e.From != id {
				continue
			}
			if err := visit(e.To); err != nil {
				return err
			}
		}

		state[id] = black
		order = append(order, id)
		return nil
	}

	for _, v := range verts {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
