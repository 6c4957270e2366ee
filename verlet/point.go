package verlet

// PointID identifies a point inside the World that created it.
type PointID int

// Point is a point mass whose velocity is the delta from its previous position.
type Point struct {
	X, Y       float64
	OldX, OldY float64
	Pinned     bool
}

// Velocity returns the implicit per-step velocity.
func (p *Point) Velocity() (float64, float64) {
	return p.X - p.OldX, p.Y - p.OldY
}

func (p *Point) integrate(gravity, damping float64) {
	if p.Pinned {
		return
	}
	vx := (p.X - p.OldX) * damping
	vy := (p.Y - p.OldY) * damping
	p.OldX = p.X
	p.OldY = p.Y
	p.X += vx
	p.Y += vy + gravity
}

func (p *Point) clamp(b bounds) {
	if p.Pinned {
		return
	}

	if p.X > b.width {
		p.X = b.width
		p.OldX = p.X + (p.X-p.OldX)*b.bounce
	} else if p.X < 0 {
		p.X = 0
		p.OldX = p.X + (p.X-p.OldX)*b.bounce
	}

	floor := b.height - b.floorOffset
	if p.Y > floor {
		p.Y = floor
		p.OldY = p.Y
		// contact friction: shrink horizontal velocity
		p.OldX += (p.X - p.OldX) * b.floorDrag
	} else if p.Y < 0 {
		p.Y = 0
	}
}

type bounds struct {
	width, height float64
	floorOffset   float64
	bounce        float64
	floorDrag     float64
}
