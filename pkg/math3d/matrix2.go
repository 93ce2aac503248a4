package math3d

import (
	"fmt"

	"github.com/taigrr/rtcore/pkg/approx"
)

// Matrix2 is an immutable 2x2 matrix stored in row-major order.
type Matrix2 struct {
	m [2][2]float64
}

// NewMatrix2 creates a Matrix2 from rows.
func NewMatrix2(rows [2][2]float64) Matrix2 {
	return Matrix2{m: rows}
}

// Identity2 returns the 2x2 identity matrix.
func Identity2() Matrix2 {
	return Matrix2{m: [2][2]float64{
		{1, 0},
		{0, 1},
	}}
}

// At returns the element at (row, col).
func (m Matrix2) At(row, col int) (float64, error) {
	if err := checkIndex("at", row, col, 2); err != nil {
		return 0, err
	}
	return m.m[row][col], nil
}

// With returns a copy of m with (row, col) set to val.
func (m Matrix2) With(row, col int, val float64) (Matrix2, error) {
	if err := checkIndex("set", row, col, 2); err != nil {
		return m, err
	}
	m.m[row][col] = val
	return m, nil
}

// Rows returns a copy of the matrix elements.
func (m Matrix2) Rows() [2][2]float64 {
	return m.m
}

// Transpose returns the transposed matrix.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m: [2][2]float64{
		{m.m[0][0], m.m[1][0]},
		{m.m[0][1], m.m[1][1]},
	}}
}

// Determinant returns ad - bc.
func (m Matrix2) Determinant() float64 {
	return m.m[0][0]*m.m[1][1] - m.m[0][1]*m.m[1][0]
}

// IsInvertible reports whether the determinant is not approximately zero.
func (m Matrix2) IsInvertible() bool {
	return !approx.Zero(m.Determinant())
}

// Equal reports whether every element is approximately equal.
func (m Matrix2) Equal(o Matrix2) bool {
	return m.EqualWithin(o, approx.Default)
}

// EqualWithin reports whether every element is equal under margin.
func (m Matrix2) EqualWithin(o Matrix2, margin approx.Margin) bool {
	for row := range 2 {
		for col := range 2 {
			if !margin.Equal(m.m[row][col], o.m[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix2) String() string {
	return fmt.Sprintf("Matrix2%v", m.m)
}
