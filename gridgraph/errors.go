package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the obstacle mask has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates an empty src or dst region was passed to ExpandIsland.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates two regions cannot be linked by converting blocked cells to free ones.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
