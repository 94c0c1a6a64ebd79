package engine

import (
	"errors"
	"fmt"
)

var (
	errNoForwardProgress = errors.New("next event time did not strictly advance")
	errUnknownRouting    = errors.New("unknown routing strategy")
	errUnknownSchedule   = errors.New("unknown schedule strategy")
	errUnknownMapping    = errors.New("unknown mapping strategy")
	errPersistExhausted  = errors.New("could not find an unused persistence filename")
)

// ErrNoForwardProgress is returned when the computed next event time does
// not strictly exceed the current tick, the one contract violation the
// driver loop itself can detect (spec's "assert next_time > current_time").
var ErrNoForwardProgress = fmt.Errorf("engine: %w", errNoForwardProgress)

// ErrUnknownRouting is returned by New when RunConfig.Routing names a
// strategy this build does not recognize.
var ErrUnknownRouting = fmt.Errorf("engine: %w", errUnknownRouting)

// ErrUnknownSchedule is returned by New when RunConfig.ScheduleStrategy
// names a strategy this build does not recognize.
var ErrUnknownSchedule = fmt.Errorf("engine: %w", errUnknownSchedule)

// ErrUnknownMapping is returned by New when RunConfig.MappingStrategy
// names a strategy this build does not recognize.
var ErrUnknownMapping = fmt.Errorf("engine: %w", errUnknownMapping)
