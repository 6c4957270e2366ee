package verlet

import (
	"fmt"
	"math"
)

const (
	DefaultGravity    = 0.5
	DefaultDamping    = 0.999
	DefaultIterations = 5
)

// Params are the per-step inputs to World.Step.
type Params struct {
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
}

// DefaultParams returns the tuning the stickman sandbox ships with.
func DefaultParams() Params {
	return Params{
		Gravity:    DefaultGravity,
		Damping:    DefaultDamping,
		Iterations: DefaultIterations,
	}
}

// Validate rejects iteration counts below one, damping outside (0, 1]
// and non-finite gravity.
func (p Params) Validate() error {
	if p.Iterations < 1 {
		return fmt.Errorf("verlet: iterations %d: %w", p.Iterations, ErrInvalidConfiguration)
	}
	if !(p.Damping > 0) || p.Damping > 1 {
		return fmt.Errorf("verlet: damping %g: %w", p.Damping, ErrInvalidConfiguration)
	}
	if math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return fmt.Errorf("verlet: gravity %g: %w", p.Gravity, ErrInvalidConfiguration)
	}
	return nil
}

// Step advances w with these params.
func (p Params) Step(w *World) error {
	return w.Step(p.Gravity, p.Damping, p.Iterations)
}
