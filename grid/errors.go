package grid

import "errors"

var (
	// ErrBadShape indicates a negative number of rows or columns.
	ErrBadShape = errors.New("grid: invalid shape")
	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)
