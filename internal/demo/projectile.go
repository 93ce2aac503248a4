package demo

import (
	"fmt"

	"github.com/taigrr/rtcore/pkg/math3d"
)

// Projectile is a point mass in flight.
type Projectile struct {
	Position math3d.Point
	Velocity math3d.Vector
}

// Environment applies the same acceleration to every projectile each tick.
type Environment struct {
	Gravity math3d.Vector
	Wind    math3d.Vector
}

// Tick advances p by one step in env.
func Tick(p Projectile, env Environment) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trajectory returns the positions p passes through until it reaches the
// ground. The first position with y <= 0 is the last element. At most
// limit positions are returned.
func Trajectory(p Projectile, env Environment, limit int) []math3d.Point {
	var path []math3d.Point
	for len(path) < limit {
		path = append(path, p.Position)
		if p.Position.Y() <= 0 {
			break
		}
		p = Tick(p, env)
	}
	return path
}

// ProjectileConfig sizes the projectile canvas and sets the launch speed.
type ProjectileConfig struct {
	Width    int
	Height   int
	Speed    float64
	MaxTicks int
}

// DefaultProjectileConfig returns the original 900x550 canvas and launch
// speed of 11.25.
func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{
		Width:    900,
		Height:   550,
		Speed:    11.25,
		MaxTicks: 10000,
	}
}

// Validate reports the first out-of-range field.
func (c ProjectileConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("canvas %dx%d must be positive: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.Speed <= 0:
		return fmt.Errorf("speed %g must be positive: %w", c.Speed, ErrInvalidConfig)
	case c.MaxTicks <= 0:
		return fmt.Errorf("max ticks %d must be positive: %w", c.MaxTicks, ErrInvalidConfig)
	}
	return nil
}

// Launch returns the starting projectile and environment: a shot from
// (0, 1, 0) along (1, 1.8, 0) under light gravity and a headwind.
func Launch(cfg ProjectileConfig) (Projectile, Environment, error) {
	dir, err := math3d.NewVector(1, 1.8, 0).Normalize()
	if err != nil {
		return Projectile{}, Environment{}, err
	}
	p := Projectile{
		Position: math3d.NewPoint(0, 1, 0),
		Velocity: dir.Mul(cfg.Speed),
	}
	env := Environment{
		Gravity: math3d.NewVector(0, -0.1, 0),
		Wind:    math3d.NewVector(-0.01, 0, 0),
	}
	return p, env, nil
}
