package buffer

import (
	"errors"
	"fmt"
)

var (
	errOverflow       = errors.New("add would exceed buffer capacity")
	errNotReserved    = errors.New("delivered item has no matching add_transfer reservation")
	errNotResident    = errors.New("delete target is not resident in buffer")
	errNotEmpty       = errors.New("buffer is not empty at finish")
	errExitTableNil   = errors.New("filter_exit_table called with no exit table configured")
	errStartMutated   = errors.New("a start-flagged (source) buffer cannot be written to")
)

// ErrOverflow reports a write that would exceed a buffer's capacity.
// Add and AddTransfer do not check capacity and never return it; callers
// check space first with CheckEnoughSpace.
var ErrOverflow = fmt.Errorf("buffer: %w", errOverflow)

// ErrNotReserved is returned when Add is called with items that were never
// reserved via AddTransfer.
var ErrNotReserved = fmt.Errorf("buffer: %w", errNotReserved)

// ErrNotResident is returned when Delete targets an item not currently held.
var ErrNotResident = fmt.Errorf("buffer: %w", errNotResident)

// ErrNotEmpty is returned by CheckFinish when a non-sink buffer still holds data.
var ErrNotEmpty = fmt.Errorf("buffer: %w", errNotEmpty)

// ErrExitTableNil is returned by FilterExitTable on an uncontrolled buffer.
var ErrExitTableNil = fmt.Errorf("buffer: %w", errExitTableNil)

// ErrStartMutated reports a write to a start-flagged InputBuffer.
// InputBuffer's own methods treat such writes as no-ops and do not return it.
var ErrStartMutated = fmt.Errorf("buffer: %w", errStartMutated)
