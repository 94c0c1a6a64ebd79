package simconfig

import (
	"errors"
	"fmt"
)

var (
	errBadImageNum   = errors.New("image_num must be positive")
	errBadGridShape  = errors.New("grid_rows and grid_cols must be positive")
	errBadBandwidth  = errors.New("bandwidth must be positive")
	errEmptyTaskList = errors.New("task_behavior_list must not be empty")
)

// ErrBadImageNum is returned by Validate when image_num <= 0.
var ErrBadImageNum = fmt.Errorf("simconfig: %w", errBadImageNum)

// ErrBadGridShape is returned by Validate when the grid has a non-positive dimension.
var ErrBadGridShape = fmt.Errorf("simconfig: %w", errBadGridShape)

// ErrBadBandwidth is returned by Validate when bandwidth <= 0.
var ErrBadBandwidth = fmt.Errorf("simconfig: %w", errBadBandwidth)

// ErrEmptyTaskList is returned by Validate when no tasks are declared.
var ErrEmptyTaskList = fmt.Errorf("simconfig: %w", errEmptyTaskList)
