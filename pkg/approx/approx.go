// Package approx provides tolerance-based float64 comparison for rtcore.
package approx

import "math"

// Epsilon is the absolute tolerance shared by every margin in rtcore.
const Epsilon = 1e-5

// Margin describes how far apart two floats may be and still compare equal.
// A pair matches if it is within Epsilon, or if ULPs is positive and the
// values are at most ULPs representable steps apart.
type Margin struct {
	Epsilon float64
	ULPs    int64
}

var (
	// Default is the absolute-epsilon margin used for tuples and small matrices.
	Default = Margin{Epsilon: Epsilon}

	// Strict adds a 4 ULP allowance, used for 4x4 matrices built by
	// chaining transforms.
	Strict = Margin{Epsilon: Epsilon, ULPs: 4}
)

// Equal reports whether a and b are equal under the Default margin.
func Equal(a, b float64) bool {
	return Default.Equal(a, b)
}

// Zero reports whether a is zero under the Default margin.
func Zero(a float64) bool {
	return Default.Zero(a)
}

// Equal reports whether a and b are equal under m.
func (m Margin) Equal(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.Abs(a-b) <= m.Epsilon {
		return true
	}
	if m.ULPs <= 0 {
		return false
	}
	// ULP distance is only meaningful between values of the same sign
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}
	return ULPDistance(a, b) <= m.ULPs
}

// Zero reports whether a is zero under m.
func (m Margin) Zero(a float64) bool {
	return m.Equal(a, 0)
}

// ULPDistance returns the number of representable float64 values between a
// and b. Values of opposite sign or NaN return math.MaxInt64.
func ULPDistance(a, b float64) int64 {
	if math.IsNaN(a) || math.IsNaN(b) || math.Signbit(a) != math.Signbit(b) {
		if a == b { // +0 and -0
			return 0
		}
		return math.MaxInt64
	}
	ia := int64(math.Float64bits(a) &^ (1 << 63))
	ib := int64(math.Float64bits(b) &^ (1 << 63))
	if ia > ib {
		return ia - ib
	}
	return ib - ia
}
