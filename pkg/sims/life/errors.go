package life

import "errors"

var (
	// ErrInvalidLength is returned when the initial cells do not cover width*height.
	ErrInvalidLength = errors.New("invalid cells length")
	// ErrInvalidCellValue is returned when an initial cell is neither 0 nor 1.
	ErrInvalidCellValue = errors.New("invalid cell state")
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)
