package verlet

import "math"

// StickID identifies a stick inside the World that created it.
type StickID int

// Stick keeps two points at a fixed rest length. It does not own its endpoints.
type Stick struct {
	A, B   PointID
	Length float64
}

// solve applies one relaxation pass to a single stick.
func (s *Stick) solve(points []Point, stiffness float64) {
	p1 := &points[s.A]
	p2 := &points[s.B]
	if p1.Pinned && p2.Pinned {
		return
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		// coincident endpoints have no correction direction; next pass or step separates them
		return
	}

	pct := (s.Length - dist) / dist / 2 * stiffness
	offX := dx * pct
	offY := dy * pct

	switch {
	case p1.Pinned:
		p2.X += offX * 2
		p2.Y += offY * 2
	case p2.Pinned:
		p1.X -= offX * 2
		p1.Y -= offY * 2
	default:
		p1.X -= offX
		p1.Y -= offY
		p2.X += offX
		p2.Y += offY
	}
}
