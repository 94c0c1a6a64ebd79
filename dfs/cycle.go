package dfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nocsim/nocsim/core"
)

const (
	white = iota
	gray
	black
)

// ErrGraphNil is returned when a nil *core.Graph is passed to
// TopologicalSort. DetectCycles reports a nil graph as cycle-free with no
// error.
var ErrGraphNil = errors.New("dfs: graph is nil")

// ErrCycleDetected indicates TopologicalSort found a cycle.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// DetectCycles walks g with three-color depth-first search and reports
// every simple cycle it finds, canonicalized (minimal rotation) so the
// same cycle reported from different starting vertices dedupes to one
// entry. Feeding it a tile dependency graph answers: can these tiles'
// producer/consumer wiring ever be scheduled in a tick?
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	var path []string
	seen := make(map[string]struct{})
	var cycles [][]string

	for _, v := range verts {
		if state[v] == white {
			if err := visitForCycles(g, v, "", state, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool { return JoinSig(cycles[i]) < JoinSig(cycles[j]) })
	if len(cycles) == 0 {
		return false, nil, nil
	}
	return true, cycles, nil
}

func visitForCycles(g *core.Graph, id, parent string, state map[string]int, path *[]string, seen map[string]struct{}, cycles *[][]string) error {
	state[id] = gray
	*path = append(*path, id)

	edges, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("neighbors(%q): %w", id, err)
	}

	for _, e := range edges {
		if g.Directed() && e.From != id {
			continue // incoming edge surfaced by undirected mirroring; only follow outgoing
		}
		if !g.Directed() && e.To == parent {
			continue // trivial backtrack over the edge we just arrived on
		}
		nbr := e.To
		if !g.Directed() && e.To == id {
			nbr = e.From
		}

		switch state[nbr] {
		case white:
			if err := visitForCycles(g, nbr, id, state, path, seen, cycles); err != nil {
				return err
			}
		case gray:
			idx := IndexOf(*path, nbr)
			segLen := len(*path) - idx
			if segLen == 2 && !g.Directed() {
				continue // the mirrored undirected edge back to a direct neighbor, not a real cycle
			}
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = black
	return nil
}

func recordCycle(start string, path []string, seen map[string]struct{}, cycles *[][]string) {
	idx := IndexOf(path, start)
	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical picks the lexicographically smaller of a cycle's minimal
// rotation and its reverse's minimal rotation, so a cycle reported
// starting from any of its vertices, in either traversal direction,
// produces the same signature.
func canonical(cycle []string) (string, []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := MinimalRotation(base)
	rotB := MinimalRotation(Reverse(base))

	picker := rotF
	if Compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]string(nil), picker...), picker[0])
	return JoinSig(closed), closed
}
