package math3d

import (
	"fmt"

	"github.com/taigrr/rtcore/pkg/approx"
)

// Matrix4 is an immutable 4x4 matrix stored in row-major order.
// It is the result type of every affine transform.
//
// For a transform matrix:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale/shear)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Matrix4 struct {
	m [4][4]float64
}

// NewMatrix4 creates a Matrix4 from rows.
func NewMatrix4(rows [4][4]float64) Matrix4 {
	return Matrix4{m: rows}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{m: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// At returns the element at (row, col).
func (m Matrix4) At(row, col int) (float64, error) {
	if err := checkIndex("at", row, col, 4); err != nil {
		return 0, err
	}
	return m.m[row][col], nil
}

// With returns a copy of m with (row, col) set to val.
func (m Matrix4) With(row, col int, val float64) (Matrix4, error) {
	if err := checkIndex("set", row, col, 4); err != nil {
		return m, err
	}
	m.m[row][col] = val
	return m, nil
}

// Rows returns a copy of the matrix elements.
func (m Matrix4) Rows() [4][4]float64 {
	return m.m
}

// Mul multiplies two matrices: a * b. Applied to a tuple, b acts first.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	var m Matrix4
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += a.m[row][k] * b.m[k][col]
			}
			m.m[row][col] = sum
		}
	}
	return m
}

// MulPoint transforms a point. The input w takes part in the product; the
// result is tagged as a point.
func (m Matrix4) MulPoint(p Point) Point {
	x, y, z := m.apply(p.x, p.y, p.z, p.w)
	return NewPoint(x, y, z)
}

// MulVector transforms a vector. With w = 0 the translation column has no
// effect.
func (m Matrix4) MulVector(v Vector) Vector {
	x, y, z := m.apply(v.x, v.y, v.z, v.w)
	return NewVector(x, y, z)
}

func (m Matrix4) apply(x, y, z, w float64) (float64, float64, float64) {
	return m.m[0][0]*x + m.m[0][1]*y + m.m[0][2]*z + m.m[0][3]*w,
		m.m[1][0]*x + m.m[1][1]*y + m.m[1][2]*z + m.m[1][3]*w,
		m.m[2][0]*x + m.m[2][1]*y + m.m[2][2]*z + m.m[2][3]*w
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{m: [4][4]float64{
		{m.m[0][0], m.m[1][0], m.m[2][0], m.m[3][0]},
		{m.m[0][1], m.m[1][1], m.m[2][1], m.m[3][1]},
		{m.m[0][2], m.m[1][2], m.m[2][2], m.m[3][2]},
		{m.m[0][3], m.m[1][3], m.m[2][3], m.m[3][3]},
	}}
}

// Submatrix returns m with the given row and column removed.
func (m Matrix4) Submatrix(row, col int) (Matrix3, error) {
	if err := checkIndex("submatrix", row, col, 4); err != nil {
		return Matrix3{}, err
	}
	return m.submatrix(row, col), nil
}

func (m Matrix4) submatrix(row, col int) Matrix3 {
	var s Matrix3
	for i := range 4 {
		if i == row {
			continue
		}
		r := i
		if i > row {
			r--
		}
		for j := range 4 {
			if j == col {
				continue
			}
			c := j
			if j > col {
				c--
			}
			s.m[r][c] = m.m[i][j]
		}
	}
	return s
}

// Minor returns the determinant of Submatrix(row, col).
func (m Matrix4) Minor(row, col int) (float64, error) {
	if err := checkIndex("minor", row, col, 4); err != nil {
		return 0, err
	}
	return m.minor(row, col), nil
}

func (m Matrix4) minor(row, col int) float64 {
	return m.submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix4) Cofactor(row, col int) (float64, error) {
	if err := checkIndex("cofactor", row, col, 4); err != nil {
		return 0, err
	}
	return m.cofactor(row, col), nil
}

func (m Matrix4) cofactor(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -m.minor(row, col)
	}
	return m.minor(row, col)
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Matrix4) Determinant() float64 {
	var det float64
	for col := range 4 {
		det += m.m[0][col] * m.cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is not approximately zero.
func (m Matrix4) IsInvertible() bool {
	return !approx.Zero(m.Determinant())
}

// Inverse returns the inverse of the matrix: the adjugate divided by the
// determinant. Returns ErrNotInvertible if the determinant is approximately
// zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if approx.Zero(det) {
		Logger().Debug("matrix not invertible", "determinant", det)
		return Matrix4{}, fmt.Errorf("inverse (det=%g): %w", det, ErrNotInvertible)
	}

	var inv Matrix4
	for row := range 4 {
		for col := range 4 {
			// swapped indices transpose the cofactor matrix in place
			inv.m[col][row] = m.cofactor(row, col) / det
		}
	}
	return inv, nil
}

// Equal reports whether every element is equal under approx.Strict.
func (m Matrix4) Equal(o Matrix4) bool {
	return m.EqualWithin(o, approx.Strict)
}

// EqualWithin reports whether every element is equal under margin.
func (m Matrix4) EqualWithin(o Matrix4, margin approx.Margin) bool {
	for row := range 4 {
		for col := range 4 {
			if !margin.Equal(m.m[row][col], o.m[row][col]) {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether m is approximately the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m.Equal(Identity4())
}

func (m Matrix4) String() string {
	return fmt.Sprintf("Matrix4%v", m.m)
}
