package tile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocsim/nocsim/item"
	"github.com/nocsim/nocsim/tile"
)

func sourceTemplate(bit, total int64) tile.DependenceTemplate {
	return tile.DependenceTemplate{
		Wait:    nil,
		Output:  []item.DataItem{item.NewPayload(0, 0, 0, 4, bit, total, 0, 0, 0, 0)},
		Drop:    nil,
		Latency: 10,
	}
}

func TestTile_SourceRunsAllPasses(t *testing.T) {
	tl, err := tile.New(tile.Config{
		ID: 1, SourceTileIDs: []int{-1}, TargetTileIDs: []int{-1},
		Dependences: []tile.DependenceTemplate{sourceTemplate(8, 100)},
		ImageNum:    2, InputCapacity: 1024, OutputCapacity: 1024,
		StartFlag: true,
	})
	require.NoError(t, err)

	require.NoError(t, tl.Update(0))
	require.Equal(t, 10.0, tl.NextEventTime())

	require.NoError(t, tl.Update(10))
	require.Equal(t, 20.0, tl.NextEventTime())

	require.NoError(t, tl.Update(20))
	require.True(t, math.IsInf(tl.NextEventTime(), 1)) // +Inf: all passes issued
	require.Equal(t, 2, tl.ComputationID())

	require.NoError(t, tl.Output.Delete([]item.DataItem{
		item.NewPayload(0, 0, 0, 4, 8, 100, 0, 0, 0, 0),
		item.NewPayload(0, 0, 0, 4, 8, 100, 1, 0, 0, 0),
	}))
	require.NoError(t, tl.CheckFinish())
}

func TestTile_StallsOnInsufficientOutputCapacity(t *testing.T) {
	tl, err := tile.New(tile.Config{
		ID: 1, SourceTileIDs: []int{-1}, TargetTileIDs: []int{-1},
		Dependences: []tile.DependenceTemplate{sourceTemplate(8, 100)},
		ImageNum:    1, InputCapacity: 1024, OutputCapacity: 16, // smaller than one 32-bit payload
		StartFlag: true,
	})
	require.NoError(t, err)

	require.NoError(t, tl.Update(0))
	require.True(t, math.IsInf(tl.NextEventTime(), 1), "blocked: output buffer too small")
}

func TestTile_ExitTileEmitsControlRecord(t *testing.T) {
	exitID := 0
	tl, err := tile.New(tile.Config{
		ID: 2, SourceTileIDs: []int{-1}, TargetTileIDs: []int{-1},
		ExitID:      &exitID,
		Dependences: []tile.DependenceTemplate{{Latency: 5}},
		ImageNum:    2, InputCapacity: 1024, OutputCapacity: 1024,
		StartFlag:  true,
		SampleList: [][]bool{{true}, {false}},
	})
	require.NoError(t, err)

	require.NoError(t, tl.Update(0))
	require.NoError(t, tl.Update(5))

	next, ok := tl.Output.NextTransfer()
	require.True(t, ok)
	require.True(t, next[0].IsControl())
	require.Equal(t, 0, next[0].ImageID)
	require.True(t, next[0].ExitDecision())
}
