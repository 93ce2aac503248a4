// Package demo holds the clock and projectile programs used by the rtcore
// CLI. Every function is pure and returns points for a caller to draw.
package demo

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/rtcore/pkg/approx"
	"github.com/taigrr/rtcore/pkg/math3d"
	"github.com/taigrr/rtcore/pkg/transform"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("demo: invalid config")

// settled is the margin at which a hand sweep stops animating.
var settled = approx.Margin{Epsilon: 1e-3}

// ClockConfig describes the clock face canvas and the hand animation.
type ClockConfig struct {
	Size   int     // canvas width and height in pixels
	Radius float64 // distance of the hour marks from the centre

	FPS       int     // sweep frame rate
	Frequency float64 // spring angular frequency
	Damping   float64 // spring damping ratio, 1 is critically damped
	MaxFrames int     // hard stop for a sweep
}

// DefaultClockConfig matches the original 100x100 clock with marks at
// radius 30.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		Size:      100,
		Radius:    30,
		FPS:       60,
		Frequency: 6,
		Damping:   1,
		MaxFrames: 600,
	}
}

// Validate reports the first out-of-range field.
func (c ClockConfig) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("size %d must be positive: %w", c.Size, ErrInvalidConfig)
	case c.Radius <= 0:
		return fmt.Errorf("radius %g must be positive: %w", c.Radius, ErrInvalidConfig)
	case c.Radius > float64(c.Size)/2:
		return fmt.Errorf("radius %g does not fit a %d pixel canvas: %w", c.Radius, c.Size, ErrInvalidConfig)
	case c.FPS <= 0:
		return fmt.Errorf("fps %d must be positive: %w", c.FPS, ErrInvalidConfig)
	case c.Frequency <= 0:
		return fmt.Errorf("frequency %g must be positive: %w", c.Frequency, ErrInvalidConfig)
	case c.Damping < 0:
		return fmt.Errorf("damping %g must not be negative: %w", c.Damping, ErrInvalidConfig)
	case c.MaxFrames <= 0:
		return fmt.Errorf("max frames %d must be positive: %w", c.MaxFrames, ErrInvalidConfig)
	}
	return nil
}

func (c ClockConfig) center() float64 {
	return float64(c.Size) / 2
}

// placement maps the unit point (0, 1, 0) rotated by angle onto the canvas
// at the given radius.
func (c ClockConfig) placement(radius, angle float64) math3d.Point {
	m := transform.Compose(
		transform.Translation(c.center(), c.center(), 0),
		transform.Scaling(radius, radius, 0),
		transform.RotationZ(angle),
	)
	return m.MulPoint(math3d.NewPoint(0, 1, 0))
}

// ClockFace returns the twelve hour marks, hour 1 first. Hour h sits at
// angle h*pi/6 from twelve o'clock, counter-clockwise in y-up coordinates.
func ClockFace(cfg ClockConfig) []math3d.Point {
	marks := make([]math3d.Point, 0, 12)
	for h := 1; h <= 12; h++ {
		marks = append(marks, cfg.placement(cfg.Radius, float64(h)*math.Pi/6))
	}
	return marks
}

// HandTip returns the tip of a clock hand at the given angle. The hand is
// shorter than the hour mark radius.
func HandTip(cfg ClockConfig, angle float64) math3d.Point {
	return cfg.placement(0.8*cfg.Radius, angle)
}

// HandSweep animates a hand from one angle to another with a spring and
// returns the angle at every frame. The sweep ends once the hand has
// settled on the target or after MaxFrames frames.
func HandSweep(cfg ClockConfig, from, to float64) []float64 {
	spring := harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping)

	pos, vel := from, 0.0
	frames := make([]float64, 0, min(cfg.MaxFrames, 256))
	for range cfg.MaxFrames {
		pos, vel = spring.Update(pos, vel, to)
		frames = append(frames, pos)
		if settled.Equal(pos, to) && settled.Zero(vel) {
			break
		}
	}

	math3d.Logger().Debug("hand sweep",
		"from", from,
		"to", to,
		"frames", len(frames))

	return frames
}
