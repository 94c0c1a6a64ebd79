package item

import (
	"errors"
	"fmt"
)

var errNonMonotoneExit = errors.New("exit table image_id must strictly increase")

// ErrNonMonotoneExit is returned by ExitTable.Observe when an incoming
// control item's ImageID does not strictly exceed the current watermark.
var ErrNonMonotoneExit = fmt.Errorf("item: %w", errNonMonotoneExit)
