package schedule

import (
	"github.com/nocsim/nocsim/communication"
	"github.com/nocsim/nocsim/wire"
)

// Strategy grants wire-path access to idle communications once per tick,
// after every Behavior in the update order has run its Update.
type Strategy interface {
	Schedule(currentTime float64, comms []*communication.Communication, net *wire.Net) error
}

// Naive is a first-come-first-served strategy: it walks comms in
// iteration order and grants a start to each idle communication that
// both has data ready (NextTransfer) and whose path is free and disjoint
// from every path already granted this tick.
type Naive struct{}

// Schedule implements Strategy.
func (Naive) Schedule(currentTime float64, comms []*communication.Communication, net *wire.Net) error {
	if net == nil {
		return ErrNilNet
	}

	claimed := make(map[string]bool)
	for _, c := range comms {
		if !c.Idle() {
			continue
		}
		items, ok := c.NextTransfer()
		if !ok {
			continue
		}

		path := c.Path()
		free, err := net.GetDataPathState(path)
		if err != nil {
			return err
		}
		if !free || pathConflicts(path, claimed) {
			continue
		}

		if err := c.Start(currentTime, items); err != nil {
			return err
		}
		for _, key := range wire.PathKeys(path) {
			claimed[key] = true
		}
	}
	return nil
}

// pathConflicts reports whether any hop of path was already claimed by
// a communication granted earlier this tick.
func pathConflicts(path []wire.Position, claimed map[string]bool) bool {
	for _, key := range wire.PathKeys(path) {
		if claimed[key] {
			return true
		}
	}
	return false
}
