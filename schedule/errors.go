package schedule

import (
	"errors"
	"fmt"
)

var errNilNet = errors.New("wire net must not be nil")

// ErrNilNet is returned when a Strategy is invoked without a WireNet.
var ErrNilNet = fmt.Errorf("schedule: %w", errNilNet)
