package main

import (
	"testing"

	"github.com/milk9111/stickman/verlet"
)

func TestClampParams(t *testing.T) {
	cases := []struct {
		name string
		in   verlet.Params
		want verlet.Params
	}{
		{"unchanged", verlet.DefaultParams(), verlet.DefaultParams()},
		{"damping_capped", verlet.Params{Gravity: 0.5, Damping: 1.001, Iterations: 5}, verlet.Params{Gravity: 0.5, Damping: 1, Iterations: 5}},
		{"iterations_floor", verlet.Params{Gravity: 0.5, Damping: 0.999, Iterations: 0}, verlet.Params{Gravity: 0.5, Damping: 0.999, Iterations: 1}},
		{"iterations_ceiling", verlet.Params{Gravity: 0.5, Damping: 0.999, Iterations: 99}, verlet.Params{Gravity: 0.5, Damping: 0.999, Iterations: iterationsMax}},
		{"gravity_capped", verlet.Params{Gravity: 5, Damping: 0.95, Iterations: 5}, verlet.Params{Gravity: gravityMax, Damping: 0.95, Iterations: 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := clampParams(c.in)
			if diff(got.Gravity, c.want.Gravity) || diff(got.Damping, c.want.Damping) || got.Iterations != c.want.Iterations {
				t.Fatalf("got=%+v want=%+v", got, c.want)
			}
			if err := got.Validate(); err != nil {
				t.Fatalf("clamped params invalid: %v", err)
			}
		})
	}
}

func diff(a, b float64) bool {
	d := a - b
	return d > 1e-9 || d < -1e-9
}
