package mapping

import (
	"errors"
	"fmt"
)

var (
	errTooManyTiles     = errors.New("tile count exceeds grid capacity")
	errUnknownTarget    = errors.New("target tile id does not exist")
	errDisconnectedTask = errors.New("tiles sharing a task id are not grid-connected")
	errUpdateCycle      = errors.New("update graph contains a cycle")
	errInsufficientFlow = errors.New("wire bandwidth cannot sustain declared communication volume")
)

// ErrTooManyTiles is returned by PlaceGrid when len(tiles) exceeds rows*cols.
var ErrTooManyTiles = fmt.Errorf("mapping: %w", errTooManyTiles)

// ErrUnknownTarget is returned when a tile names a target id with no matching tile.
var ErrUnknownTarget = fmt.Errorf("mapping: %w", errUnknownTarget)

// ErrDisconnectedTask is returned by ValidateConnectivity.
var ErrDisconnectedTask = fmt.Errorf("mapping: %w", errDisconnectedTask)

// ErrUpdateCycle is returned by ValidateUpdateOrder.
var ErrUpdateCycle = fmt.Errorf("mapping: %w", errUpdateCycle)

// ErrInsufficientFlow is returned by ValidateThroughput.
var ErrInsufficientFlow = fmt.Errorf("mapping: %w", errInsufficientFlow)
