package tile

import (
	"errors"
	"fmt"
)

var (
	errLatencyNonPositive = errors.New("dependence latency must be positive")
	errAlreadyRunning     = errors.New("start requested while already running")
	errNotFinished        = errors.New("tile has not completed its computation list")
	errEndTimeNotInf      = errors.New("computation_end_time should be infinite at finish")
	errEmptyWait          = errors.New("dependence wait list is empty")
	errNoExitTable        = errors.New("update_exit_table called on an uncontrolled tile")
)

// ErrLatencyNonPositive is returned when a dependence template's latency is ≤ 0.
var ErrLatencyNonPositive = fmt.Errorf("tile: %w", errLatencyNonPositive)

// ErrAlreadyRunning is returned if Update is asked to start a tile that is
// already mid-computation (a contract violation; the engine never does this).
var ErrAlreadyRunning = fmt.Errorf("tile: %w", errAlreadyRunning)

// ErrNotFinished is returned by CheckFinish when a source tile has not
// completed image_num passes.
var ErrNotFinished = fmt.Errorf("tile: %w", errNotFinished)

// ErrEndTimeNotInf is returned by CheckFinish when computationEndTime is finite.
var ErrEndTimeNotInf = fmt.Errorf("tile: %w", errEndTimeNotInf)

// ErrEmptyWait is returned when a non-source tile's dependence step
// declares no wait items. A source tile's steps may leave Wait empty.
var ErrEmptyWait = fmt.Errorf("tile: %w", errEmptyWait)

// ErrNoExitTable is returned by UpdateExitTable on an uncontrolled tile.
var ErrNoExitTable = fmt.Errorf("tile: %w", errNoExitTable)
