package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/nocsim/nocsim/analysis"
	"github.com/nocsim/nocsim/simconfig"
	"github.com/nocsim/nocsim/wire"
)

// RunSingle drives the event loop to completion: every tick, every
// module in the update order advances to currentTime, the schedule
// strategy admits idle communications, and time jumps to the earliest
// next event. It returns the full list of visited time points, or
// ErrNoForwardProgress if the next event time fails to strictly advance.
func (e *Engine) RunSingle(ctx context.Context) ([]float64, error) {
	currentTime := 0.0
	var timePoints []float64
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, u := range e.order {
			if err := u.Update(currentTime); err != nil {
				return nil, err
			}
		}
		if err := e.opts.Schedule.Schedule(currentTime, e.comms, e.net); err != nil {
			return nil, err
		}

		nextTime := math.Inf(1)
		for _, t := range e.tiles {
			if v := t.NextEventTime(); v < nextTime {
				nextTime = v
			}
		}
		for _, c := range e.comms {
			if v := c.EndTime(); v < nextTime {
				nextTime = v
			}
		}

		if nextTime <= currentTime {
			return nil, fmt.Errorf("engine: tick %.6f -> %.6f: %w", currentTime, nextTime, ErrNoForwardProgress)
		}
		if math.IsInf(nextTime, 1) {
			break
		}
		currentTime = nextTime
		timePoints = append(timePoints, currentTime)

		e.opts.Logger.Debugf("tick %.6f: %d updaters, %d time points so far", currentTime, len(e.order), len(timePoints))
	}
	return timePoints, nil
}

// CheckFinish validates every tile, communication, and the wire net
// itself against their end-of-run invariants.
func (e *Engine) CheckFinish() error {
	for _, t := range e.tiles {
		if err := t.CheckFinish(); err != nil {
			return err
		}
	}
	for _, c := range e.comms {
		if err := c.CheckFinish(); err != nil {
			return err
		}
	}
	return e.net.CheckFinish()
}

// Run executes the transparent-then-opaque double pass described by
// spec.md §4.7: a transparent pass (wires never block) yields a
// conflict-free oracle whose occupancy feeds the conflict/bool matrices;
// an independent opaque pass (fresh tiles and communications built from
// the same configuration) yields the reported latency and final
// communication ranges. The two passes use separate Engine instances
// because Tile and Communication are stateful and cannot be rewound.
func Run(ctx context.Context, cfg *simconfig.RunConfig, opts RunOptions) (ExperimentRecord, error) {
	opts.normalize()

	transparent, err := New(cfg, opts)
	if err != nil {
		return ExperimentRecord{}, err
	}
	transparent.net.SetTransparent(true)
	transTimes, err := transparent.RunSingle(ctx)
	if err != nil {
		return ExperimentRecord{}, fmt.Errorf("engine: transparent pass: %w", err)
	}
	if err := transparent.CheckFinish(); err != nil {
		return ExperimentRecord{}, fmt.Errorf("engine: transparent pass: %w", err)
	}
	transLatency := lastOrZero(transTimes)
	opts.Logger.Infof("transparent pass finished at %.3f", transLatency)

	result := analysis.Compute(communicationRecords(transparent.comms))

	opaque, err := New(cfg, opts)
	if err != nil {
		return ExperimentRecord{}, err
	}
	opaque.net.SetTransparent(false)
	opaqueTimes, err := opaque.RunSingle(ctx)
	if err != nil {
		return ExperimentRecord{}, fmt.Errorf("engine: opaque pass: %w", err)
	}
	if err := opaque.CheckFinish(); err != nil {
		return ExperimentRecord{}, fmt.Errorf("engine: opaque pass: %w", err)
	}
	latency := lastOrZero(opaqueTimes)
	opts.Logger.Infof("opaque pass finished at %.3f", latency)

	infoList := make([]CommunicationInfo, len(transparent.comms))
	for i, c := range transparent.comms {
		infoList[i] = CommunicationInfo{
			ID:      c.ID,
			LayerID: c.LayerID,
			Amount:  c.Amount(),
			RangeT:  c.Ranges(),
			Path:    wire.PathKeys(c.Path()),
		}
	}
	for i, c := range opaque.comms {
		if i < len(infoList) {
			infoList[i].RangeO = c.Ranges()
		}
	}

	tileUtilization := make(map[int]float64, len(opaque.tiles))
	for _, t := range opaque.tiles {
		tileUtilization[t.ID] = t.RunningRate(latency)
	}

	return ExperimentRecord{
		RunID:                 newRunID(),
		ConflictMatrix:        result.Conflict,
		BoolMatrix:            result.Bool,
		CommunicationInfoList: infoList,
		Latency:               latency,
		TickCount:             len(opaqueTimes),
		Fitness:               opts.Fitness,
		TileUtilization:       tileUtilization,
	}, nil
}

func lastOrZero(points []float64) float64 {
	if len(points) == 0 {
		return 0
	}
	return points[len(points)-1]
}
