package mapping

import (
	"fmt"

	"github.com/nocsim/nocsim/communication"
	"github.com/nocsim/nocsim/item"
	"github.com/nocsim/nocsim/tile"
	"github.com/nocsim/nocsim/wire"
)

// BuildCommunications instantiates one Communication per (producer,
// consumer) pair sharing a task id, where consumer.ID appears in
// producer.TargetTileIDs. The sentinel target -1 (final tile in a task)
// never resolves to a communication. IDs are assigned sequentially in
// tiles order for reproducibility.
func BuildCommunications(tiles []*tile.Tile, net *wire.Net, router wire.Router) ([]*communication.Communication, error) {
	byID := make(map[int]*tile.Tile, len(tiles))
	for _, t := range tiles {
		byID[t.ID] = t
	}

	var out []*communication.Communication
	nextID := 0
	for _, producer := range tiles {
		for _, targetID := range producer.TargetTileIDs {
			if targetID == -1 {
				continue
			}
			consumer, ok := byID[targetID]
			if !ok {
				return nil, fmt.Errorf("tile %d -> %d: %w", producer.ID, targetID, ErrUnknownTarget)
			}
			if consumer.TaskID != producer.TaskID {
				continue
			}
			path, err := router.Route(net, producer.Position, consumer.Position)
			if err != nil {
				return nil, fmt.Errorf("mapping: route tile %d -> %d: %w", producer.ID, targetID, err)
			}
			comm := communication.New(nextID, producer.ID, consumer.ID, producer.LayerID,
				producer.Output, consumer.Input, net, path)
			if consumer.ControlTileID != nil && *consumer.ControlTileID == producer.ID {
				target := consumer
				comm.SetDeliverHook(func(items []item.DataItem) error {
					return target.UpdateExitTable(items)
				})
			}
			out = append(out, comm)
			nextID++
		}
	}
	return out, nil
}
