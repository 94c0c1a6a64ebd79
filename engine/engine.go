package engine

import (
	"fmt"

	"github.com/nocsim/nocsim/communication"
	"github.com/nocsim/nocsim/mapping"
	"github.com/nocsim/nocsim/schedule"
	"github.com/nocsim/nocsim/simconfig"
	"github.com/nocsim/nocsim/simlog"
	"github.com/nocsim/nocsim/tile"
	"github.com/nocsim/nocsim/wire"
)

// Engine holds one fully mapped, validated run: every tile and
// communication the event loop will drive, the wire net they share, and
// the strategy used to admit transfers each tick.
type Engine struct {
	cfg   *simconfig.RunConfig
	opts  RunOptions
	tiles []*tile.Tile
	comms []*communication.Communication
	net   *wire.Net
	order []mapping.Updater
}

// New flattens cfg's per-task tile behaviors, constructs one *tile.Tile
// per entry, places them on the grid, routes and constructs
// communications, runs mapping.ValidateConnectivity and
// mapping.ValidateUpdateOrder, and derives the update order before
// returning; mapping.ValidateThroughput is not run. The returned Engine
// is ready for Run.
func New(cfg *simconfig.RunConfig, opts RunOptions) (*Engine, error) {
	opts.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MappingStrategy != "" && cfg.MappingStrategy != "naive" {
		return nil, fmt.Errorf("engine: mapping strategy %q: %w", cfg.MappingStrategy, ErrUnknownMapping)
	}

	router, err := routerFor(cfg.Routing, opts.Router)
	if err != nil {
		return nil, err
	}
	sched, err := scheduleFor(cfg.ScheduleStrategy, opts.Schedule)
	if err != nil {
		return nil, err
	}
	opts.Router = router
	opts.Schedule = sched

	var tiles []*tile.Tile
	for taskID, task := range cfg.TaskBehaviorList {
		for _, b := range task {
			t, err := buildTile(taskID, b, cfg.ImageNum, cfg.InputBufferBits, cfg.OutputBufferBits, cfg.SampleList)
			if err != nil {
				return nil, fmt.Errorf("engine: build tile %d: %w", b.TileID, err)
			}
			tiles = append(tiles, t)
		}
	}

	net, err := mapping.PlaceGrid(cfg.GridRows, cfg.GridCols, cfg.Bandwidth, tiles)
	if err != nil {
		return nil, err
	}
	comms, err := mapping.BuildCommunications(tiles, net, router)
	if err != nil {
		return nil, err
	}
	if err := mapping.ValidateConnectivity(cfg.GridRows, cfg.GridCols, tiles); err != nil {
		return nil, err
	}
	if _, err := mapping.ValidateUpdateOrder(tiles, comms); err != nil {
		return nil, err
	}

	order := mapping.GetUpdateOrder(tiles, comms)

	opts.Logger.Infof("mapped %d tiles across %d tasks, %d communications", len(tiles), len(cfg.TaskBehaviorList), len(comms))
	summarize(opts.Logger, cfg)

	return &Engine{cfg: cfg, opts: opts, tiles: tiles, comms: comms, net: net, order: order}, nil
}

// summarize logs the tile/communication/behavior counts per task at
// startup, mirroring the original's Array.__init__ logging.
func summarize(log simlog.Logger, cfg *simconfig.RunConfig) {
	var totalTiles, totalComms, totalBehaviors int
	for taskID, task := range cfg.TaskBehaviorList {
		tileCount := len(task)
		var commCount, behaviorCount int
		for _, b := range task {
			repeated := 1
			isSentinel := len(b.TargetTileID) == 1 && b.TargetTileID[0] == -1
			if !isSentinel {
				commCount += len(b.TargetTileID)
				repeated += len(b.TargetTileID)
			}
			behaviorCount += len(b.Dependence) * repeated
		}
		totalTiles += tileCount
		totalComms += commCount
		totalBehaviors += behaviorCount
		log.Infof("task %d has %d tiles, %d communications, %d behaviors", taskID, tileCount, commCount, behaviorCount)
	}
	log.Infof("in total, %d tiles, %d communications, %d behaviors", totalTiles, totalComms, totalBehaviors)
}
