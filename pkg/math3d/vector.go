// Package math3d provides the homogeneous tuples and fixed-size matrices of
// the rtcore ray tracer.
package math3d

import (
	"fmt"
	"math"

	"github.com/taigrr/rtcore/pkg/approx"
)

// Vector is a direction in 3D space (homogeneous w = 0).
type Vector struct {
	x, y, z, w float64
}

// NewVector creates a Vector.
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z, 0}
}

// X returns the x component.
func (v Vector) X() float64 { return v.x }

// Y returns the y component.
func (v Vector) Y() float64 { return v.y }

// Z returns the z component.
func (v Vector) Z() float64 { return v.z }

// W returns the homogeneous tag (always 0 for vectors).
func (v Vector) W() float64 { return v.w }

// Add returns the vector sum a + b.
func (a Vector) Add(b Vector) Vector {
	return Vector{a.x + b.x, a.y + b.y, a.z + b.z, a.w + b.w}
}

// AddPoint returns the point reached by moving p along a.
func (a Vector) AddPoint(p Point) Point {
	return Point{a.x + p.x, a.y + p.y, a.z + p.z, a.w + p.w}
}

// Sub returns the vector difference a - b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{a.x - b.x, a.y - b.y, a.z - b.z, a.w - b.w}
}

// Neg returns the negated vector.
func (v Vector) Neg() Vector {
	return Vector{-v.x, -v.y, -v.z, 0}
}

// Mul returns the scalar product v * s.
func (v Vector) Mul(s float64) Vector {
	return Vector{v.x * s, v.y * s, v.z * s, 0}
}

// Div returns the scalar division v / s.
func (v Vector) Div(s float64) Vector {
	return v.Mul(1 / s)
}

// Dot returns the dot product a · b.
func (a Vector) Dot(b Vector) float64 {
	return a.x*b.x + a.y*b.y + a.z*b.z
}

// Cross returns the right-handed cross product a × b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.y*b.z - a.z*b.y,
		a.z*b.x - a.x*b.z,
		a.x*b.y - a.y*b.x,
		0,
	}
}

// Magnitude returns the length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

// Normalize returns the unit vector in the same direction.
// Returns ErrDivisionByZero if the vector has (approximately) zero length.
func (v Vector) Normalize() (Vector, error) {
	l := v.Magnitude()
	if approx.Zero(l) {
		Logger().Debug("normalize zero-length vector", "vector", v.String())
		return Vector{}, fmt.Errorf("normalize %s: %w", v, ErrDivisionByZero)
	}
	return Vector{v.x / l, v.y / l, v.z / l, 0}, nil
}

// Equal reports whether a and b have approximately equal x, y and z.
func (a Vector) Equal(b Vector) bool {
	return approx.Equal(a.x, b.x) && approx.Equal(a.y, b.y) && approx.Equal(a.z, b.z)
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g, %g)", v.x, v.y, v.z)
}
