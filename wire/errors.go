package wire

import (
	"errors"
	"fmt"
)

var (
	errWireNotFound  = errors.New("no wire registered for endpoint pair")
	errPathBusy      = errors.New("path requested opaque when a wire on it is busy")
	errBadPosition   = errors.New("malformed grid vertex id")
	errNoRoute       = errors.New("router found no path between positions")
	errNotAdjacent   = errors.New("path contains a non-adjacent hop")
	errNetNotFinished = errors.New("wire net has a busy wire at finish")
)

// ErrWireNotFound is returned when a canonical key has no registered wire.
var ErrWireNotFound = fmt.Errorf("wire: %w", errWireNotFound)

// ErrPathBusy is returned by SetDataPathState(path, true) callers that
// skipped the required GetDataPathState precheck (defensive; the naive
// scheduler never triggers this in practice).
var ErrPathBusy = fmt.Errorf("wire: %w", errPathBusy)

// ErrBadPosition is returned when a grid vertex id cannot be parsed.
var ErrBadPosition = fmt.Errorf("wire: %w", errBadPosition)

// ErrNoRoute is returned when a Router cannot connect two positions.
var ErrNoRoute = fmt.Errorf("wire: %w", errNoRoute)

// ErrNotAdjacent is returned when a supplied path skips a hop.
var ErrNotAdjacent = fmt.Errorf("wire: %w", errNotAdjacent)

// ErrNetNotFinished is returned by CheckFinish when a wire is still busy.
var ErrNetNotFinished = fmt.Errorf("wire: %w", errNetNotFinished)
