package engine

import (
	"github.com/nocsim/nocsim/item"
	"github.com/nocsim/nocsim/simconfig"
	"github.com/nocsim/nocsim/tile"
)

func convertItem(spec simconfig.ItemSpec) item.DataItem {
	return item.DataItem{
		X: spec.X, Y: spec.Y,
		Start: spec.Start, End: spec.End,
		Bit: spec.Bit, Total: spec.Total,
		ImageID: spec.ImageID,
		Field7:  spec.Field7,
		Field8:  spec.Field8,
		TileID:  spec.TileID,
	}
}

func convertItems(specs []simconfig.ItemSpec) []item.DataItem {
	out := make([]item.DataItem, len(specs))
	for i, s := range specs {
		out[i] = convertItem(s)
	}
	return out
}

func convertDependence(specs []simconfig.DependenceSpec) []tile.DependenceTemplate {
	out := make([]tile.DependenceTemplate, len(specs))
	for i, s := range specs {
		out[i] = tile.DependenceTemplate{
			Wait:    convertItems(s.Wait),
			Output:  convertItems(s.Output),
			Drop:    convertItems(s.Drop),
			Latency: s.Latency,
		}
	}
	return out
}

// buildTile constructs a *tile.Tile from one task_behavior_list entry.
// TaskID is assigned by the caller from the entry's position within
// TaskBehaviorList, matching mapping.py's per-task enumeration rather
// than any task_id the YAML document itself might carry.
func buildTile(taskID int, b simconfig.TileBehavior, imageNum int, inputBits, outputBits int64, sampleList [][]bool) (*tile.Tile, error) {
	return tile.New(tile.Config{
		ID:             b.TileID,
		TaskID:         taskID,
		LayerID:        b.LayerID,
		SourceTileIDs:  b.SourceTileID,
		TargetTileIDs:  b.TargetTileID,
		ControlTileID:  b.ControlTileID,
		ExitID:         b.ExitID,
		Dependences:    convertDependence(b.Dependence),
		ImageNum:       imageNum,
		InputCapacity:  inputBits,
		OutputCapacity: outputBits,
		SampleList:     sampleList,
		StartFlag:      b.StartFlag,
		EndFlag:        b.EndFlag,
		ToExit:         b.ToExit,
	})
}
