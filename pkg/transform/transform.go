// Package transform builds the 4x4 affine matrices used by rtcore.
//
// Every function is a pure factory. Transforms compose by matrix
// multiplication, and A.Mul(B) applied to a tuple applies B first, so
//
//	transform.Translation(10, 5, 7).Mul(transform.Scaling(5, 5, 5)).Mul(transform.RotationX(math.Pi / 2))
//
// rotates, then scales, then translates. Chain takes its arguments in
// application order instead.
package transform

import (
	"fmt"
	"math"

	"github.com/taigrr/rtcore/pkg/math3d"
)

// Translation creates a translation matrix. Vectors are unaffected.
func Translation(x, y, z float64) math3d.Matrix4 {
	return math3d.NewMatrix4([4][4]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scaling creates a scaling matrix. Negative factors reflect.
func Scaling(x, y, z float64) math3d.Matrix4 {
	return math3d.NewMatrix4([4][4]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// UniformScaling creates a uniform scaling matrix.
func UniformScaling(s float64) math3d.Matrix4 {
	return Scaling(s, s, s)
}

// RotationX creates a rotation matrix around the X axis.
func RotationX(radians float64) math3d.Matrix4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return math3d.NewMatrix4([4][4]float64{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	})
}

// RotationY creates a rotation matrix around the Y axis.
func RotationY(radians float64) math3d.Matrix4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return math3d.NewMatrix4([4][4]float64{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ creates a rotation matrix around the Z axis.
func RotationZ(radians float64) math3d.Matrix4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return math3d.NewMatrix4([4][4]float64{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing creates a shearing matrix. Each parameter moves the first
// coordinate in proportion to the second, e.g. xy moves x by y.
func Shearing(xy, xz, yx, yz, zx, zy float64) math3d.Matrix4 {
	return math3d.NewMatrix4([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// RotationAxis creates a right-handed rotation around an arbitrary axis.
// The axis is normalized first; a zero axis returns math3d.ErrDivisionByZero.
func RotationAxis(axis math3d.Vector, radians float64) (math3d.Matrix4, error) {
	axis, err := axis.Normalize()
	if err != nil {
		return math3d.Matrix4{}, fmt.Errorf("rotation axis: %w", err)
	}
	c, s := math.Cos(radians), math.Sin(radians)
	t := 1 - c
	x, y, z := axis.X(), axis.Y(), axis.Z()

	return math3d.NewMatrix4([4][4]float64{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}), nil
}

// Quaternion creates the rotation described by the quaternion (x, y, z, w),
// the layout glTF uses. The quaternion is normalized first; a zero
// quaternion returns math3d.ErrDivisionByZero.
func Quaternion(x, y, z, w float64) (math3d.Matrix4, error) {
	n := math.Sqrt(x*x + y*y + z*z + w*w)
	if n == 0 || math.IsNaN(n) {
		return math3d.Matrix4{}, fmt.Errorf("quaternion (%g, %g, %g, %g): %w", x, y, z, w, math3d.ErrDivisionByZero)
	}
	x, y, z, w = x/n, y/n, z/n, w/n

	return math3d.NewMatrix4([4][4]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w), 0},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w), 0},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y), 0},
		{0, 0, 0, 1},
	}), nil
}

// Compose multiplies the matrices in written order: ms[0] * ms[1] * ...
// The last matrix is the first one applied to a tuple.
func Compose(ms ...math3d.Matrix4) math3d.Matrix4 {
	out := math3d.Identity4()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}

// Chain multiplies the matrices in application order: the first argument is
// applied first, so Chain(a, b, c) == Compose(c, b, a).
func Chain(ms ...math3d.Matrix4) math3d.Matrix4 {
	out := math3d.Identity4()
	for _, m := range ms {
		out = m.Mul(out)
	}
	return out
}
