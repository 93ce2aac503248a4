package math3d

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when normalizing a zero-length vector.
	ErrDivisionByZero = errors.New("math3d: division by zero")

	// ErrNotInvertible is returned when inverting a matrix whose determinant
	// is approximately zero.
	ErrNotInvertible = errors.New("math3d: matrix is not invertible")

	// ErrIndexOutOfRange is returned for row or column indices outside [0, N).
	ErrIndexOutOfRange = errors.New("math3d: index out of range")
)

// IndexError reports an out-of-range (row, col) access on an NxN matrix.
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Op       string
	Row, Col int
	Size     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("math3d: %s (%d, %d) on %dx%d matrix: index out of range",
		e.Op, e.Row, e.Col, e.Size, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// checkIndex returns an *IndexError if (row, col) falls outside an n x n grid.
func checkIndex(op string, row, col, n int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		Logger().Debug("matrix index out of range", "op", op, "row", row, "col", col, "size", n)
		return &IndexError{Op: op, Row: row, Col: col, Size: n}
	}
	return nil
}
