// Package ray provides the parametric ray used by the rtcore tracer.
package ray

import (
	"fmt"

	"github.com/taigrr/rtcore/pkg/math3d"
)

// Ray is a half-line starting at Origin and heading along Direction.
type Ray struct {
	origin    math3d.Point
	direction math3d.Vector
}

// New creates a Ray. The direction is used as given, without normalizing.
func New(origin math3d.Point, direction math3d.Vector) Ray {
	return Ray{origin: origin, direction: direction}
}

// Origin returns the start point.
func (r Ray) Origin() math3d.Point { return r.origin }

// Direction returns the direction vector.
func (r Ray) Direction() math3d.Vector { return r.direction }

// At returns the point at distance t along the ray: origin + direction*t.
func (r Ray) At(t float64) math3d.Point {
	return r.origin.Add(r.direction.Mul(t))
}

// Transform returns the ray with m applied to its origin and direction.
func (r Ray) Transform(m math3d.Matrix4) Ray {
	return Ray{
		origin:    m.MulPoint(r.origin),
		direction: m.MulVector(r.direction),
	}
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(%v -> %v)", r.origin, r.direction)
}
