package mapping

import (
	"github.com/nocsim/nocsim/communication"
	"github.com/nocsim/nocsim/tile"
)

// Updater is anything the engine advances once per tick. Both *tile.Tile
// and *communication.Communication satisfy it.
type Updater interface {
	Update(currentTime float64) error
}

// GetUpdateOrder walks tiles in the given order and, for each, emits the
// communications that drain its output buffer, then the tile itself, then
// the communications that feed its input buffer. A communication with
// distinct producer and consumer tiles is therefore visited twice per
// full pass: once as its producer's outgoing step, once as its consumer's
// incoming step. Both visits are safe — Update is a no-op unless the
// communication's internal state actually calls for advancing.
func GetUpdateOrder(tiles []*tile.Tile, comms []*communication.Communication) []Updater {
	order := make([]Updater, 0, len(tiles)+2*len(comms))
	for _, t := range tiles {
		seen := make(map[*communication.Communication]bool, len(comms))
		for _, c := range comms {
			if c.ProducerID == t.ID && !seen[c] {
				order = append(order, c)
				seen[c] = true
			}
		}
		order = append(order, t)
		for _, c := range comms {
			if c.ConsumerID == t.ID {
				order = append(order, c)
			}
		}
	}
	return order
}
