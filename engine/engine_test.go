package engine_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocsim/nocsim/engine"
	"github.com/nocsim/nocsim/simconfig"
)

// chainConfig builds a single task of two tiles: a source that emits one
// 32-bit payload and a sink that waits on it, wired across a 1x2 grid.
func chainConfig() *simconfig.RunConfig {
	payload := simconfig.ItemSpec{X: 0, Y: 0, Start: 0, End: 4, Bit: 8, Total: 100}

	producer := simconfig.TileBehavior{
		TileID:       0,
		SourceTileID: []int{-1},
		TargetTileID: []int{1},
		StartFlag:    true,
		Dependence: []simconfig.DependenceSpec{
			{Output: []simconfig.ItemSpec{payload}, Latency: 10},
		},
	}
	consumer := simconfig.TileBehavior{
		TileID:       1,
		SourceTileID: []int{0},
		TargetTileID: []int{-1},
		EndFlag:      true,
		Dependence: []simconfig.DependenceSpec{
			{Wait: []simconfig.ItemSpec{payload}, Drop: []simconfig.ItemSpec{payload}, Latency: 5},
		},
	}

	return &simconfig.RunConfig{
		TaskBehaviorList: [][]simconfig.TileBehavior{{producer, consumer}},
		ImageNum:         1,
		GridRows:         1,
		GridCols:         2,
		InputBufferBits:  1024,
		OutputBufferBits: 1024,
		Bandwidth:        32,
		MappingStrategy:  "naive",
		ScheduleStrategy: "naive",
		Routing:          "bfs",
	}
}

func TestNew_ValidatesAndMaps(t *testing.T) {
	cfg := chainConfig()
	e, err := engine.New(cfg, engine.DefaultRunOptions())
	require.NoError(t, err)
	require.NotNil(t, e)
}

func TestNew_RejectsUnknownMappingStrategy(t *testing.T) {
	cfg := chainConfig()
	cfg.MappingStrategy = "genetic"
	_, err := engine.New(cfg, engine.DefaultRunOptions())
	require.ErrorIs(t, err, engine.ErrUnknownMapping)
}

func TestNew_RejectsUnknownRouting(t *testing.T) {
	cfg := chainConfig()
	cfg.Routing = "teleport"
	_, err := engine.New(cfg, engine.DefaultRunOptions())
	require.ErrorIs(t, err, engine.ErrUnknownRouting)
}

func TestNew_RejectsUnknownSchedule(t *testing.T) {
	cfg := chainConfig()
	cfg.ScheduleStrategy = "greedy"
	_, err := engine.New(cfg, engine.DefaultRunOptions())
	require.ErrorIs(t, err, engine.ErrUnknownSchedule)
}

func TestRunSingle_AdvancesAndFinishes(t *testing.T) {
	cfg := chainConfig()
	e, err := engine.New(cfg, engine.DefaultRunOptions())
	require.NoError(t, err)

	points, err := e.RunSingle(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for i := 1; i < len(points); i++ {
		require.Greater(t, points[i], points[i-1])
	}
	require.NoError(t, e.CheckFinish())
}

// TestRun_SingleProducerSingleConsumer covers the scenario of a single
// producer feeding a single consumer on a 1x2 grid: opaque latency equals
// the sum of the producer's compute latency (10), the transfer duration
// (32 bits over bandwidth 32 = 1), and the consumer's compute latency (5).
func TestRun_SingleProducerSingleConsumer(t *testing.T) {
	cfg := chainConfig()
	record, err := engine.Run(context.Background(), cfg, engine.DefaultRunOptions())
	require.NoError(t, err)

	require.Greater(t, record.Latency, 0.0)
	require.False(t, math.IsNaN(record.Latency))
	require.Equal(t, 16.0, record.Latency)
	require.Len(t, record.CommunicationInfoList, 1)
	require.NotEmpty(t, record.CommunicationInfoList[0].Path)
	require.Contains(t, record.TileUtilization, 0)
	require.Contains(t, record.TileUtilization, 1)
	require.Equal(t, 1, record.ConflictMatrix.Rows())
	require.Equal(t, 1, record.ConflictMatrix.Cols())
	require.Equal(t, 0.0, record.ConflictMatrix.At(0, 0), "a single communication cannot conflict with itself")
}

// TestRun_TwoIndependentCommunicationsDoNotConflict covers a second task
// running in parallel with the first: two producer/consumer pairs placed
// on their own rows transfer at the same time but share no wire, so the
// conflict matrix stays all zero.
func TestRun_TwoIndependentCommunicationsDoNotConflict(t *testing.T) {
	payload := simconfig.ItemSpec{X: 0, Y: 0, Start: 0, End: 4, Bit: 8, Total: 100}
	task := func(base int) []simconfig.TileBehavior {
		return []simconfig.TileBehavior{
			{
				TileID: base, SourceTileID: []int{-1}, TargetTileID: []int{base + 1}, StartFlag: true,
				Dependence: []simconfig.DependenceSpec{{Output: []simconfig.ItemSpec{payload}, Latency: 10}},
			},
			{
				TileID: base + 1, SourceTileID: []int{base}, TargetTileID: []int{-1}, EndFlag: true,
				Dependence: []simconfig.DependenceSpec{{Wait: []simconfig.ItemSpec{payload}, Drop: []simconfig.ItemSpec{payload}, Latency: 5}},
			},
		}
	}

	cfg := &simconfig.RunConfig{
		TaskBehaviorList: [][]simconfig.TileBehavior{task(0), task(2)},
		ImageNum:         1,
		GridRows:         2,
		GridCols:         2,
		InputBufferBits:  1024,
		OutputBufferBits: 1024,
		Bandwidth:        32,
		MappingStrategy:  "naive",
		ScheduleStrategy: "naive",
		Routing:          "bfs",
	}

	record, err := engine.Run(context.Background(), cfg, engine.DefaultRunOptions())
	require.NoError(t, err)
	require.Len(t, record.CommunicationInfoList, 2)
	require.Equal(t, 2, record.ConflictMatrix.Rows())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, 0.0, record.ConflictMatrix.At(i, j))
		}
	}
}
