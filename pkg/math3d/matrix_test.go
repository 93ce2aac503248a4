package math3d

import (
	"errors"
	"math"
	"testing"
)

// Shared fixtures from the cofactor and inversion examples.
var (
	cofactorFixture = NewMatrix4([4][4]float64{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	})

	sequentialFixture = NewMatrix4([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	})
)

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-5 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestMatrixAt(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{1, 2, 3, 4},
		{5.5, 6.5, 7.5, 8.5},
		{9, 10, 11, 12},
		{13.5, 14.5, 15.5, 16.5},
	})

	tests := []struct {
		row, col int
		expected float64
	}{
		{0, 0, 1},
		{0, 3, 4},
		{1, 0, 5.5},
		{1, 2, 7.5},
		{2, 2, 11},
		{3, 0, 13.5},
		{3, 2, 15.5},
	}
	for _, tc := range tests {
		got, err := m.At(tc.row, tc.col)
		if err != nil {
			t.Fatalf("At(%d, %d): %v", tc.row, tc.col, err)
		}
		if got != tc.expected {
			t.Errorf("At(%d, %d) = %v, want %v", tc.row, tc.col, got, tc.expected)
		}
	}

	m2 := NewMatrix2([2][2]float64{{-3, 5}, {1, -2}})
	if v, _ := m2.At(1, 1); v != -2 {
		t.Errorf("Matrix2.At(1, 1) = %v, want -2", v)
	}
	m3 := NewMatrix3([3][3]float64{{-3, 5, 0}, {1, -2, -7}, {0, 1, 1}})
	if v, _ := m3.At(1, 2); v != -7 {
		t.Errorf("Matrix3.At(1, 2) = %v, want -7", v)
	}
}

func TestMatrixIndexOutOfRange(t *testing.T) {
	m4 := Identity4()
	m3 := Identity3()
	m2 := Identity2()

	tests := []struct {
		name string
		size int
		call func() error
	}{
		{"4x4 at row", 4, func() error { _, err := m4.At(4, 0); return err }},
		{"4x4 at negative col", 4, func() error { _, err := m4.At(0, -1); return err }},
		{"4x4 with", 4, func() error { _, err := m4.With(0, 4, 1); return err }},
		{"4x4 submatrix", 4, func() error { _, err := m4.Submatrix(5, 0); return err }},
		{"4x4 minor", 4, func() error { _, err := m4.Minor(-1, 2); return err }},
		{"4x4 cofactor", 4, func() error { _, err := m4.Cofactor(1, 4); return err }},
		{"3x3 at", 3, func() error { _, err := m3.At(3, 3); return err }},
		{"3x3 submatrix", 3, func() error { _, err := m3.Submatrix(0, 3); return err }},
		{"3x3 minor", 3, func() error { _, err := m3.Minor(3, 0); return err }},
		{"3x3 cofactor", 3, func() error { _, err := m3.Cofactor(-1, 0); return err }},
		{"2x2 at", 2, func() error { _, err := m2.At(2, 0); return err }},
		{"2x2 with", 2, func() error { _, err := m2.With(0, 2, 1); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("error = %v, want ErrIndexOutOfRange", err)
			}
			var ie *IndexError
			if !errors.As(err, &ie) {
				t.Fatalf("error %T is not *IndexError", err)
			}
			if ie.Size != tc.size {
				t.Errorf("IndexError.Size = %d, want %d", ie.Size, tc.size)
			}
		})
	}
}

func TestMatrixWithReturnsCopy(t *testing.T) {
	m := Identity4()
	updated, err := m.With(0, 3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := updated.At(0, 3); v != 7 {
		t.Errorf("updated (0, 3) = %v, want 7", v)
	}
	if v, _ := m.At(0, 3); v != 0 {
		t.Errorf("original (0, 3) = %v, want 0 (must not alias)", v)
	}

	rows := m.Rows()
	rows[0][0] = 99
	if v, _ := m.At(0, 0); v != 1 {
		t.Errorf("Rows() must return a copy, got (0, 0) = %v", v)
	}
}

func TestMatrixEquality(t *testing.T) {
	a := NewMatrix4([4][4]float64{
		{1, 2, 3, 4},
		{5.5, 6.5, 7.5, 8.5},
		{9, 10, 11, 12},
		{13.5, 14.5, 15.5, 16.5},
	})
	b := a
	if !a.Equal(b) {
		t.Error("identical 4x4 matrices should be equal")
	}
	c, _ := a.With(0, 0, 1.0001)
	if a.Equal(c) {
		t.Error("4x4 matrices differing by 1e-4 should not be equal")
	}

	m2a := NewMatrix2([2][2]float64{{1, 2}, {5.5, 6.5}})
	m2b := NewMatrix2([2][2]float64{{1.0001, 2}, {5.5, 6.5}})
	if !m2a.Equal(m2a) || m2a.Equal(m2b) {
		t.Error("Matrix2 equality mismatch")
	}

	m3a := NewMatrix3([3][3]float64{{1, 2, 3}, {5.5, 6.5, 7.5}, {9, 10, 11}})
	m3b := NewMatrix3([3][3]float64{{1.001, 2, 3}, {5.5, 6.5, 7.55}, {9, 10, 11}})
	if !m3a.Equal(m3a) || m3a.Equal(m3b) {
		t.Error("Matrix3 equality mismatch")
	}
}

func TestMatrix4Mul(t *testing.T) {
	b := NewMatrix4([4][4]float64{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	})
	a := NewMatrix4([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	})
	expected := NewMatrix4([4][4]float64{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	})

	if got := a.Mul(b); !got.Equal(expected) {
		t.Errorf("a*b = %v, want %v", got, expected)
	}
}

func TestMatrix4Identity(t *testing.T) {
	if !sequentialFixture.Mul(Identity4()).Equal(sequentialFixture) {
		t.Error("M * I != M")
	}
	if !Identity4().Mul(sequentialFixture).Equal(sequentialFixture) {
		t.Error("I * M != M")
	}
	if det := Identity4().Determinant(); det != 1 {
		t.Errorf("det(I4) = %v, want 1", det)
	}
	if det := Identity3().Determinant(); det != 1 {
		t.Errorf("det(I3) = %v, want 1", det)
	}
	if det := Identity2().Determinant(); det != 1 {
		t.Errorf("det(I2) = %v, want 1", det)
	}
	if !Identity4().IsIdentity() || sequentialFixture.IsIdentity() {
		t.Error("IsIdentity mismatch")
	}
}

func TestMatrix4MulTuple(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	})

	p := m.MulPoint(NewPoint(1, 2, 3))
	assertPoint(t, p, NewPoint(18, 24, 33))
	assertW(t, p.W(), 1)

	v := m.MulVector(NewVector(1, 2, 3))
	assertVector(t, v, NewVector(14, 22, 32))
	assertW(t, v.W(), 0)

	assertPoint(t, Identity4().MulPoint(NewPoint(1, 2, 3)), NewPoint(1, 2, 3))
}

func TestTranspose(t *testing.T) {
	expected := NewMatrix4([4][4]float64{
		{1, 5, 9, 5},
		{2, 6, 8, 4},
		{3, 7, 7, 3},
		{4, 8, 6, 2},
	})
	if got := sequentialFixture.Transpose(); !got.Equal(expected) {
		t.Errorf("transpose = %v, want %v", got, expected)
	}
	if !Identity4().Transpose().Equal(Identity4()) {
		t.Error("transpose(I) != I")
	}

	for _, m := range []Matrix4{sequentialFixture, cofactorFixture, Identity4()} {
		if !m.Transpose().Transpose().Equal(m) {
			t.Errorf("transpose(transpose(%v)) != M", m)
		}
	}

	m3 := NewMatrix3([3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	want3 := NewMatrix3([3][3]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}})
	if !m3.Transpose().Equal(want3) || !m3.Transpose().Transpose().Equal(m3) {
		t.Error("Matrix3 transpose mismatch")
	}

	m2 := NewMatrix2([2][2]float64{{1, 2}, {3, 4}})
	want2 := NewMatrix2([2][2]float64{{1, 3}, {2, 4}})
	if !m2.Transpose().Equal(want2) || !m2.Transpose().Transpose().Equal(m2) {
		t.Error("Matrix2 transpose mismatch")
	}
}

func TestMatrix2Determinant(t *testing.T) {
	m := NewMatrix2([2][2]float64{{1, 5}, {-3, 2}})
	assertFloat(t, "det", m.Determinant(), 17)
	if !m.IsInvertible() {
		t.Error("expected invertible")
	}
	if NewMatrix2([2][2]float64{{1, 2}, {2, 4}}).IsInvertible() {
		t.Error("rank-1 Matrix2 should not be invertible")
	}
}

func TestMatrix3Submatrix(t *testing.T) {
	m := NewMatrix3([3][3]float64{{1, 5, 0}, {-3, 2, 7}, {0, 6, -3}})
	got, err := m.Submatrix(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := NewMatrix2([2][2]float64{{-3, 2}, {0, 6}})
	if !got.Equal(want) {
		t.Errorf("submatrix = %v, want %v", got, want)
	}
}

func TestMatrix3MinorCofactor(t *testing.T) {
	m := NewMatrix3([3][3]float64{{3, 5, 0}, {2, -1, -7}, {6, -1, 5}})

	minor, err := m.Minor(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertFloat(t, "minor(1,0)", minor, 25)

	c00, _ := m.Cofactor(0, 0)
	assertFloat(t, "cofactor(0,0)", c00, -12)
	c10, _ := m.Cofactor(1, 0)
	assertFloat(t, "cofactor(1,0)", c10, -25)
}

func TestMatrix3Determinant(t *testing.T) {
	m := NewMatrix3([3][3]float64{{1, 2, 6}, {-5, 8, -4}, {2, 6, 4}})
	for col, want := range []float64{56, 12, -46} {
		got, _ := m.Cofactor(0, col)
		assertFloat(t, "cofactor", got, want)
	}
	assertFloat(t, "det", m.Determinant(), -196)
	if !m.IsInvertible() {
		t.Error("expected invertible")
	}
}

func TestMatrix4Submatrix(t *testing.T) {
	got, err := sequentialFixture.Submatrix(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := NewMatrix3([3][3]float64{{1, 3, 4}, {5, 7, 8}, {5, 3, 2}})
	if !got.Equal(want) {
		t.Errorf("submatrix(2, 1) = %v, want %v", got, want)
	}

	m := NewMatrix4([4][4]float64{
		{-6, 1, 1, 6},
		{-8, 5, 8, 6},
		{-1, 0, 8, 2},
		{-7, 1, -1, 1},
	})
	got, _ = m.Submatrix(2, 1)
	want = NewMatrix3([3][3]float64{{-6, 1, 6}, {-8, 8, 6}, {-7, -1, 1}})
	if !got.Equal(want) {
		t.Errorf("submatrix(2, 1) = %v, want %v", got, want)
	}
}

func TestMatrix4MinorCofactorDeterminant(t *testing.T) {
	minors := []struct {
		row, col int
		expected float64
	}{
		{0, 0, 690},
		{1, 2, 431},
		{2, 3, 207},
	}
	for _, tc := range minors {
		got, err := cofactorFixture.Minor(tc.row, tc.col)
		if err != nil {
			t.Fatal(err)
		}
		assertFloat(t, "minor", got, tc.expected)
	}

	for col, want := range []float64{690, 447, 210, 51} {
		got, _ := cofactorFixture.Cofactor(0, col)
		assertFloat(t, "cofactor", got, want)
	}

	assertFloat(t, "det", cofactorFixture.Determinant(), -4071)
}

func TestMatrix4IsInvertible(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{6, 4, 4, 4},
		{5, 5, 7, 6},
		{4, -9, 3, -7},
		{9, 1, 7, -6},
	})
	assertFloat(t, "det", m.Determinant(), -2120)
	if !m.IsInvertible() {
		t.Error("expected invertible")
	}

	singular := NewMatrix4([4][4]float64{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	})
	assertFloat(t, "det", singular.Determinant(), 0)
	if singular.IsInvertible() {
		t.Error("expected not invertible")
	}
	if _, err := singular.Inverse(); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("Inverse() error = %v, want ErrNotInvertible", err)
	}
}

func TestMatrix4Inverse(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix4
		expected Matrix4
	}{
		{
			name: "first",
			m: NewMatrix4([4][4]float64{
				{-5, 2, 6, -8},
				{1, -5, 1, 8},
				{7, 7, -6, -7},
				{1, -3, 7, 4},
			}),
			expected: NewMatrix4([4][4]float64{
				{0.21805, 0.45113, 0.24060, -0.04511},
				{-0.80827, -1.45677, -0.44361, 0.52068},
				{-0.07895, -0.22368, -0.05263, 0.19737},
				{-0.52256, -0.81391, -0.30075, 0.30639},
			}),
		},
		{
			name: "second",
			m: NewMatrix4([4][4]float64{
				{8, -5, 9, 2},
				{7, 5, 6, 1},
				{-6, 0, 9, 6},
				{-3, 0, -9, -4},
			}),
			expected: NewMatrix4([4][4]float64{
				{-0.15385, -0.15385, -0.28205, -0.53846},
				{-0.07692, 0.12308, 0.02564, 0.03077},
				{0.35897, 0.35897, 0.43590, 0.92308},
				{-0.69231, -0.69231, -0.76923, -1.92308},
			}),
		},
		{
			name: "third",
			m: NewMatrix4([4][4]float64{
				{9, 3, 0, 9},
				{-5, -2, -6, -3},
				{-4, 9, 6, 4},
				{-7, 6, 6, 2},
			}),
			expected: NewMatrix4([4][4]float64{
				{-0.04074, -0.07778, 0.14444, -0.22222},
				{-0.07778, 0.03333, 0.36667, -0.33333},
				{-0.02901, -0.14630, -0.10926, 0.12963},
				{0.17778, 0.06667, -0.26667, 0.33333},
			}),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, err := tc.m.Inverse()
			if err != nil {
				t.Fatal(err)
			}
			if !inv.Equal(tc.expected) {
				t.Errorf("inverse = %v, want %v", inv, tc.expected)
			}
			if !tc.m.Mul(inv).Equal(Identity4()) {
				t.Errorf("M * inverse(M) = %v, want identity", tc.m.Mul(inv))
			}
			if !inv.Mul(tc.m).Equal(Identity4()) {
				t.Errorf("inverse(M) * M = %v, want identity", inv.Mul(tc.m))
			}
		})
	}
}

func TestMatrix4InverseCofactorLayout(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	})
	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	assertFloat(t, "det", m.Determinant(), 532)

	c23, _ := m.Cofactor(2, 3)
	assertFloat(t, "cofactor(2,3)", c23, -160)
	b32, _ := inv.At(3, 2)
	assertFloat(t, "inverse(3,2)", b32, -160.0/532)

	c32, _ := m.Cofactor(3, 2)
	assertFloat(t, "cofactor(3,2)", c32, 105)
	b23, _ := inv.At(2, 3)
	assertFloat(t, "inverse(2,3)", b23, 105.0/532)
}

func TestMultiplyProductByInverse(t *testing.T) {
	a := NewMatrix4([4][4]float64{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	})
	b := NewMatrix4([4][4]float64{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	})

	invB, err := b.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Mul(b).Mul(invB); !got.Equal(a) {
		t.Errorf("(A*B)*inverse(B) = %v, want %v", got, a)
	}
}
