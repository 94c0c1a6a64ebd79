package communication

import (
	"errors"
	"fmt"
)

var (
	errAlreadyTransferring = errors.New("start requested while already transferring")
	errNotFinished         = errors.New("communication still transferring at finish")
)

// ErrAlreadyTransferring is returned by Start on a non-idle Communication.
var ErrAlreadyTransferring = fmt.Errorf("communication: %w", errAlreadyTransferring)

// ErrNotFinished is returned by CheckFinish on a still-transferring Communication.
var ErrNotFinished = fmt.Errorf("communication: %w", errNotFinished)
