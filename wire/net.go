package wire

import (
	"fmt"

	"github.com/nocsim/nocsim/core"
	"github.com/nocsim/nocsim/item"
)

// direction indexes the dense per-cell wire table.
type direction int

const (
	dirNorth direction = iota
	dirSouth
	dirEast
	dirWest
	numDirections
)

func directionTo(from, to Position) direction {
	switch {
	case to.Row < from.Row:
		return dirNorth
	case to.Row > from.Row:
		return dirSouth
	case to.Col > from.Col:
		return dirEast
	default:
		return dirWest
	}
}

// Net aggregates every Wire on an R×C grid. Lookup by canonical key serves
// Communication/analysis; the dense (row, col, direction) index serves the
// hot scheduling path without hashing.
type Net struct {
	rows, cols int
	graph      *core.Graph // routing substrate, built via builder.Grid by mapping
	byKey      map[string]*Wire
	dense      [][][numDirections]*Wire
}

// NewNet builds a Net from a grid core.Graph (as produced by
// builder.Grid(rows, cols)) whose vertex ids follow the "r,c" scheme.
// Every edge in g becomes one Wire with the given bandwidth.
func NewNet(g *core.Graph, rows, cols int, bandwidth int64) (*Net, error) {
	n := &Net{
		rows:  rows,
		cols:  cols,
		graph: g,
		byKey: make(map[string]*Wire),
		dense: make([][][numDirections]*Wire, rows),
	}
	for r := range n.dense {
		n.dense[r] = make([][numDirections]*Wire, cols)
	}

	id := 0
	for _, e := range g.Edges() {
		a, err := ParsePosition(e.From)
		if err != nil {
			return nil, err
		}
		b, err := ParsePosition(e.To)
		if err != nil {
			return nil, err
		}
		if !adjacent(a, b) {
			return nil, fmt.Errorf("edge %s: %w", e.ID, ErrNotAdjacent)
		}
		key := MapKey(a, b)
		if _, exists := n.byKey[key]; exists {
			continue
		}
		w := &Wire{ID: id, A: a, B: b, Bandwidth: bandwidth}
		id++
		n.byKey[key] = w
		n.dense[a.Row][a.Col][directionTo(a, b)] = w
		n.dense[b.Row][b.Col][directionTo(b, a)] = w
	}
	return n, nil
}

// Graph exposes the routing substrate for Router implementations and
// mapping's validation passes.
func (n *Net) Graph() *core.Graph { return n.graph }

// Rows and Cols report the grid extents.
func (n *Net) Rows() int { return n.rows }
func (n *Net) Cols() int { return n.cols }

func (n *Net) wireAt(a, b Position) (*Wire, error) {
	w, ok := n.byKey[MapKey(a, b)]
	if !ok {
		return nil, ErrWireNotFound
	}
	return w, nil
}

// SetTransparent toggles transparent mode for every wire in the net.
func (n *Net) SetTransparent(state bool) {
	for _, w := range n.byKey {
		w.setTransparent(state)
	}
}

// pathWires resolves a position sequence into the Wire for each hop.
func (n *Net) pathWires(path []Position) ([]*Wire, error) {
	wires := make([]*Wire, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		w, err := n.wireAt(path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		wires = append(wires, w)
	}
	return wires, nil
}

// GetDataPathState reports whether every wire along path is free.
func (n *Net) GetDataPathState(path []Position) (bool, error) {
	wires, err := n.pathWires(path)
	if err != nil {
		return false, err
	}
	for _, w := range wires {
		if w.Busy() {
			return false, nil
		}
	}
	return true, nil
}

// SetDataPathState marks every wire along path busy or free.
func (n *Net) SetDataPathState(path []Position, busy bool) error {
	wires, err := n.pathWires(path)
	if err != nil {
		return err
	}
	for _, w := range wires {
		w.setBusy(busy)
	}
	return nil
}

// GetWireTransferTime sums bits/bandwidth across every wire on path for
// the given items.
func (n *Net) GetWireTransferTime(path []Position, items []item.DataItem) (float64, error) {
	wires, err := n.pathWires(path)
	if err != nil {
		return 0, err
	}
	bits := item.SizeOf(items)
	var total float64
	for _, w := range wires {
		total += w.transferTime(bits)
	}
	return total, nil
}

// CheckFinish returns ErrNetNotFinished if any wire is still busy.
func (n *Net) CheckFinish() error {
	for _, w := range n.byKey {
		if w.Busy() {
			return ErrNetNotFinished
		}
	}
	return nil
}

// PathKeys canonicalizes every hop of path into its MapKey form, the
// representation Communication and analysis report externally.
func PathKeys(path []Position) []string {
	keys := make([]string, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		keys = append(keys, MapKey(path[i], path[i+1]))
	}
	return keys
}
