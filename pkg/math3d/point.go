package math3d

import (
	"fmt"

	"github.com/taigrr/rtcore/pkg/approx"
)

// Point is a position in 3D space (homogeneous w = 1).
type Point struct {
	x, y, z, w float64
}

// NewPoint creates a Point.
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z, 1}
}

// Origin returns the point (0, 0, 0).
func Origin() Point {
	return NewPoint(0, 0, 0)
}

// X returns the x component.
func (p Point) X() float64 { return p.x }

// Y returns the y component.
func (p Point) Y() float64 { return p.y }

// Z returns the z component.
func (p Point) Z() float64 { return p.z }

// W returns the homogeneous tag. It is 1 unless the point was scaled.
func (p Point) W() float64 { return p.w }

// Add returns p moved along v.
func (p Point) Add(v Vector) Point {
	return Point{p.x + v.x, p.y + v.y, p.z + v.z, p.w + v.w}
}

// Sub returns the vector from b to a.
func (a Point) Sub(b Point) Vector {
	return Vector{a.x - b.x, a.y - b.y, a.z - b.z, a.w - b.w}
}

// SubVector returns p moved against v.
func (p Point) SubVector(v Vector) Point {
	return Point{p.x - v.x, p.y - v.y, p.z - v.z, p.w - v.w}
}

// Neg mirrors the point through the origin. The w tag stays 1.
func (p Point) Neg() Point {
	return Point{-p.x, -p.y, -p.z, 1}
}

// Mul scales every component, including w, by s.
func (p Point) Mul(s float64) Point {
	return Point{p.x * s, p.y * s, p.z * s, p.w * s}
}

// Div divides every component, including w, by s.
func (p Point) Div(s float64) Point {
	return p.Mul(1 / s)
}

// Distance returns the distance between two points.
func (a Point) Distance(b Point) float64 {
	return a.Sub(b).Magnitude()
}

// Equal reports whether a and b have approximately equal x, y and z.
func (a Point) Equal(b Point) bool {
	return approx.Equal(a.x, b.x) && approx.Equal(a.y, b.y) && approx.Equal(a.z, b.z)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g, %g)", p.x, p.y, p.z)
}
