package core

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("core: all rows must have the same length")
	// ErrNotSquare indicates a lattice whose width and height differ.
	ErrNotSquare = errors.New("core: lattice must be square")
	// ErrNotBinary indicates an occupancy grid holding a value other than 0 or 1.
	ErrNotBinary = errors.New("core: occupancy grid must hold only 0 and 1")
)
