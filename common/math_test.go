package common

import "testing"

func TestClampAndSnap(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"clamp_low", Clamp(-1, 0, 1), 0},
		{"clamp_high", Clamp(3, 0, 1), 1},
		{"clamp_inside", Clamp(0.25, 0, 1), 0.25},
		{"snap", Snap(0.537, 0.05), 0.55},
		{"snap_zero_step", Snap(0.537, 0), 0.537},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := c.got - c.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("got=%v want=%v", c.got, c.want)
			}
		})
	}
}
