package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports every value the simulation cannot run with, combined into one error.
func (c *Config) Validate() error {
	var err error

	positive := func(name string, value float64) {
		if !(value > 0) {
			err = multierr.Append(err, fmt.Errorf("%s must be positive, got %v: %w", name, value, ErrInvalidConfig))
		}
	}

	positive("physics.inertia", c.Physics.Inertia)
	positive("ball.mass", c.Ball.Mass)
	positive("ball.radius", c.Ball.Radius)
	positive("simulation.timestep", c.Simulation.Timestep)

	if c.Physics.LinearDamping < 0 || c.Physics.AngularDamping < 0 {
		err = multierr.Append(err, fmt.Errorf("physics damping must not be negative: %w", ErrInvalidConfig))
	}
	if c.Simulation.MaxFrames <= 0 {
		err = multierr.Append(err, fmt.Errorf("simulation.max_frames must be positive, got %d: %w", c.Simulation.MaxFrames, ErrInvalidConfig))
	}

	for i, plane := range c.Course.Planes {
		if plane.Normal == (Vec3{}) {
			err = multierr.Append(err, fmt.Errorf("course.planes[%d] %q has a zero normal: %w", i, plane.Name, ErrInvalidConfig))
		}
	}
	for i, box := range c.Course.Boxes {
		positive(fmt.Sprintf("course.boxes[%d].size.x", i), box.Size[0])
		positive(fmt.Sprintf("course.boxes[%d].size.y", i), box.Size[1])
		positive(fmt.Sprintf("course.boxes[%d].size.z", i), box.Size[2])
	}
	for i, hole := range c.Course.Holes {
		positive(fmt.Sprintf("course.holes[%d].radius", i), hole.Radius)
		positive(fmt.Sprintf("course.holes[%d].height", i), hole.Height)
		if hole.Radius > 0 && hole.Radius <= c.Ball.Radius {
			err = multierr.Append(err, fmt.Errorf("course.holes[%d] %q is narrower than the ball: %w", i, hole.Name, ErrInvalidConfig))
		}
	}
	if c.Course.Club.Enabled {
		positive("course.club.length", c.Course.Club.Length)
	}

	if sw := c.Simulation.Sweep; sw != nil {
		if sw.Workers <= 0 || sw.YawSteps <= 0 || sw.PowerSteps <= 0 {
			err = multierr.Append(err, fmt.Errorf("simulation.sweep needs positive workers and steps: %w", ErrInvalidConfig))
		}
		if sw.MinPower > sw.MaxPower {
			err = multierr.Append(err, fmt.Errorf("simulation.sweep min_power above max_power: %w", ErrInvalidConfig))
		}
	}

	if b := c.Course.Bounds; b != nil {
		for axis := 0; axis < 3; axis++ {
			if b.Min[axis] >= b.Max[axis] {
				err = multierr.Append(err, fmt.Errorf("course.bounds min must be below max on every axis: %w", ErrInvalidConfig))
				break
			}
		}
	}

	return err
}
