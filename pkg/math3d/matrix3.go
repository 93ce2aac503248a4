package math3d

import (
	"fmt"

	"github.com/taigrr/rtcore/pkg/approx"
)

// Matrix3 is an immutable 3x3 matrix stored in row-major order.
type Matrix3 struct {
	m [3][3]float64
}

// NewMatrix3 creates a Matrix3 from rows.
func NewMatrix3(rows [3][3]float64) Matrix3 {
	return Matrix3{m: rows}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{m: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// At returns the element at (row, col).
func (m Matrix3) At(row, col int) (float64, error) {
	if err := checkIndex("at", row, col, 3); err != nil {
		return 0, err
	}
	return m.m[row][col], nil
}

// With returns a copy of m with (row, col) set to val.
func (m Matrix3) With(row, col int, val float64) (Matrix3, error) {
	if err := checkIndex("set", row, col, 3); err != nil {
		return m, err
	}
	m.m[row][col] = val
	return m, nil
}

// Rows returns a copy of the matrix elements.
func (m Matrix3) Rows() [3][3]float64 {
	return m.m
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	var t Matrix3
	for row := range 3 {
		for col := range 3 {
			t.m[row][col] = m.m[col][row]
		}
	}
	return t
}

// Submatrix returns m with the given row and column removed.
func (m Matrix3) Submatrix(row, col int) (Matrix2, error) {
	if err := checkIndex("submatrix", row, col, 3); err != nil {
		return Matrix2{}, err
	}
	return m.submatrix(row, col), nil
}

func (m Matrix3) submatrix(row, col int) Matrix2 {
	var s Matrix2
	r := 0
	for i := range 3 {
		if i == row {
			continue
		}
		c := 0
		for j := range 3 {
			if j == col {
				continue
			}
			s.m[r][c] = m.m[i][j]
			c++
		}
		r++
	}
	return s
}

// Minor returns the determinant of Submatrix(row, col).
func (m Matrix3) Minor(row, col int) (float64, error) {
	if err := checkIndex("minor", row, col, 3); err != nil {
		return 0, err
	}
	return m.minor(row, col), nil
}

func (m Matrix3) minor(row, col int) float64 {
	return m.submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix3) Cofactor(row, col int) (float64, error) {
	if err := checkIndex("cofactor", row, col, 3); err != nil {
		return 0, err
	}
	return m.cofactor(row, col), nil
}

func (m Matrix3) cofactor(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -m.minor(row, col)
	}
	return m.minor(row, col)
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Matrix3) Determinant() float64 {
	var det float64
	for col := range 3 {
		det += m.m[0][col] * m.cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is not approximately zero.
func (m Matrix3) IsInvertible() bool {
	return !approx.Zero(m.Determinant())
}

// Equal reports whether every element is approximately equal.
func (m Matrix3) Equal(o Matrix3) bool {
	return m.EqualWithin(o, approx.Default)
}

// EqualWithin reports whether every element is equal under margin.
func (m Matrix3) EqualWithin(o Matrix3, margin approx.Margin) bool {
	for row := range 3 {
		for col := range 3 {
			if !margin.Equal(m.m[row][col], o.m[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix3) String() string {
	return fmt.Sprintf("Matrix3%v", m.m)
}
