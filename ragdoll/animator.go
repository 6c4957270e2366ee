package ragdoll

import (
	"math"

	"github.com/milk9111/stickman/verlet"
)

const (
	// GroundBand is how far above the floor a foot still counts as planted.
	GroundBand = 10.0
	// StepRate converts elapsed seconds into gait phase.
	StepRate = 5.0
	StrideX  = 0.5
	LiftY    = 2.0
)

// Animator shuffles planted feet back and forth so standing figures appear to walk.
type Animator struct {
	Enabled bool
}

func NewAnimator() *Animator {
	return &Animator{Enabled: true}
}

// Update nudges the feet of every walking ragdoll. t is elapsed time in seconds.
func (a *Animator) Update(w *verlet.World, dolls []*Ragdoll, t float64) {
	if a == nil || !a.Enabled || w == nil {
		return
	}
	phase := t * StepRate
	threshold := w.Config().Floor() - GroundBand

	for _, r := range dolls {
		if r == nil || !r.Walk {
			continue
		}
		step(w, r.Point(LeftFoot), threshold, math.Sin(phase))
		step(w, r.Point(RightFoot), threshold, math.Cos(phase))
	}
}

func step(w *verlet.World, foot verlet.PointID, threshold, wave float64) {
	p, ok := w.Point(foot)
	if !ok || p.Pinned || p.Y <= threshold {
		return
	}
	_ = w.Nudge(foot, wave*StrideX, -math.Max(0, wave)*LiftY)
}
