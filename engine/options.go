package engine

import (
	"context"

	"github.com/nocsim/nocsim/schedule"
	"github.com/nocsim/nocsim/simlog"
	"github.com/nocsim/nocsim/wire"
)

// RunOptions configures one Engine, following the same
// normalize()-on-zero-value pattern as flow.FlowOptions.
type RunOptions struct {
	Ctx      context.Context
	Logger   simlog.Logger
	Router   wire.Router
	Schedule schedule.Strategy
	Fitness  float64
}

// DefaultRunOptions returns production-safe defaults: a background
// context, a no-op logger, BFS routing, and naive FCFS scheduling.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Ctx:      context.Background(),
		Logger:   simlog.Nop(),
		Router:   wire.BFSRouter{},
		Schedule: schedule.Naive{},
	}
}

func (o *RunOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = simlog.Nop()
	}
	if o.Router == nil {
		o.Router = wire.BFSRouter{}
	}
	if o.Schedule == nil {
		o.Schedule = schedule.Naive{}
	}
}

// routerFor resolves a simconfig.RunConfig.Routing selector to a
// wire.Router, defaulting to opts.Router when the selector is empty.
func routerFor(name string, fallback wire.Router) (wire.Router, error) {
	switch name {
	case "", "bfs":
		if name == "" {
			return fallback, nil
		}
		return wire.BFSRouter{}, nil
	case "dijkstra":
		return wire.DijkstraRouter{}, nil
	default:
		return nil, ErrUnknownRouting
	}
}

// scheduleFor resolves a simconfig.RunConfig.ScheduleStrategy selector to
// a schedule.Strategy, defaulting to opts.Schedule when the selector is
// empty.
func scheduleFor(name string, fallback schedule.Strategy) (schedule.Strategy, error) {
	switch name {
	case "":
		return fallback, nil
	case "naive":
		return schedule.Naive{}, nil
	default:
		return nil, ErrUnknownSchedule
	}
}
