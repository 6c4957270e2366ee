// Package verlet implements a position-based point and stick simulation:
// Verlet integration with damping and gravity, a rectangular viewport clamp
// with an inelastic floor, and fixed-iteration stick length relaxation.
//
// A World is not safe for concurrent use. Input that moves points must be
// applied between calls to Step from the goroutine that owns the world.
package verlet

import (
	"fmt"
	"math"
)

const (
	DefaultFloorOffset = 50.0
	DefaultBounce      = 0.5
	DefaultFloorDrag   = 0.1
	DefaultStiffness   = 0.5
)

// Config holds the per-world constants that do not change between steps.
type Config struct {
	Width       float64
	Height      float64
	FloorOffset float64
	Bounce      float64
	FloorDrag   float64
	Stiffness   float64
}

// DefaultConfig returns a Config for a viewport of the given size.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:       width,
		Height:      height,
		FloorOffset: DefaultFloorOffset,
		Bounce:      DefaultBounce,
		FloorDrag:   DefaultFloorDrag,
		Stiffness:   DefaultStiffness,
	}
}

// Validate reports whether the config describes a usable world.
func (c Config) Validate() error {
	switch {
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("verlet: viewport %gx%g: %w", c.Width, c.Height, ErrInvalidConfiguration)
	case c.FloorOffset < 0 || c.FloorOffset > c.Height:
		return fmt.Errorf("verlet: floor offset %g: %w", c.FloorOffset, ErrInvalidConfiguration)
	case c.Bounce < 0 || c.Bounce > 1:
		return fmt.Errorf("verlet: bounce %g: %w", c.Bounce, ErrInvalidConfiguration)
	case c.FloorDrag < 0 || c.FloorDrag > 1:
		return fmt.Errorf("verlet: floor drag %g: %w", c.FloorDrag, ErrInvalidConfiguration)
	case !(c.Stiffness > 0) || c.Stiffness > 1:
		return fmt.Errorf("verlet: stiffness %g: %w", c.Stiffness, ErrInvalidConfiguration)
	}
	return nil
}

// Floor returns the y coordinate of the floor line.
func (c Config) Floor() float64 {
	return c.Height - c.FloorOffset
}

// Vec is a rendered point position.
type Vec struct {
	X, Y float64
}

// Segment is a rendered stick.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// World owns an ordered set of points and the sticks between them.
type World struct {
	cfg    Config
	points []Point
	sticks []Stick
}

// NewWorld creates an empty world.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &World{cfg: cfg}, nil
}

// Config returns the world constants.
func (w *World) Config() Config {
	return w.cfg
}

// Resize changes the viewport. Points outside the new bounds are pulled in
// by the next Step.
func (w *World) Resize(width, height float64) error {
	cfg := w.cfg
	cfg.Width = width
	cfg.Height = height
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.cfg = cfg
	return nil
}

// Reset drops every point and stick. Previously returned ids become invalid.
func (w *World) Reset() {
	w.points = w.points[:0]
	w.sticks = w.sticks[:0]
}

// AddPoint creates a point at rest at (x, y).
func (w *World) AddPoint(x, y float64, pinned bool) PointID {
	w.points = append(w.points, Point{X: x, Y: y, OldX: x, OldY: y, Pinned: pinned})
	return PointID(len(w.points) - 1)
}

// AddStick connects a and b with a rest length equal to their current distance.
func (w *World) AddStick(a, b PointID) (StickID, error) {
	if !w.valid(a) {
		return -1, fmt.Errorf("verlet: stick endpoint %d: %w", a, ErrUnknownPoint)
	}
	if !w.valid(b) {
		return -1, fmt.Errorf("verlet: stick endpoint %d: %w", b, ErrUnknownPoint)
	}
	if a == b {
		return -1, fmt.Errorf("verlet: stick from point %d to itself: %w", a, ErrInvalidConstraint)
	}
	pa, pb := w.points[a], w.points[b]
	w.sticks = append(w.sticks, Stick{
		A:      a,
		B:      b,
		Length: math.Hypot(pb.X-pa.X, pb.Y-pa.Y),
	})
	return StickID(len(w.sticks) - 1), nil
}

// SetPinned pins or releases a point.
func (w *World) SetPinned(id PointID, pinned bool) error {
	if !w.valid(id) {
		return fmt.Errorf("verlet: pin %d: %w", id, ErrUnknownPoint)
	}
	w.points[id].Pinned = pinned
	return nil
}

// SetPosition teleports a point and zeroes its implicit velocity.
func (w *World) SetPosition(id PointID, x, y float64) error {
	if !w.valid(id) {
		return fmt.Errorf("verlet: move %d: %w", id, ErrUnknownPoint)
	}
	p := &w.points[id]
	p.X, p.Y = x, y
	p.OldX, p.OldY = x, y
	return nil
}

// Nudge displaces a point without touching its previous position, which
// adds the displacement to its velocity.
func (w *World) Nudge(id PointID, dx, dy float64) error {
	if !w.valid(id) {
		return fmt.Errorf("verlet: nudge %d: %w", id, ErrUnknownPoint)
	}
	w.points[id].X += dx
	w.points[id].Y += dy
	return nil
}

// Point returns a copy of the point with the given id.
func (w *World) Point(id PointID) (Point, bool) {
	if !w.valid(id) {
		return Point{}, false
	}
	return w.points[id], true
}

// Stick returns a copy of the stick with the given id.
func (w *World) Stick(id StickID) (Stick, bool) {
	if id < 0 || int(id) >= len(w.sticks) {
		return Stick{}, false
	}
	return w.sticks[id], true
}

func (w *World) Len() int      { return len(w.points) }
func (w *World) StickLen() int { return len(w.sticks) }

// Step advances the simulation by one tick: integrate, clamp, then relax
// every stick iterations times. Invalid arguments leave the world untouched.
func (w *World) Step(gravity, damping float64, iterations int) error {
	if err := (Params{Gravity: gravity, Damping: damping, Iterations: iterations}).Validate(); err != nil {
		return err
	}

	b := bounds{
		width:       w.cfg.Width,
		height:      w.cfg.Height,
		floorOffset: w.cfg.FloorOffset,
		bounce:      w.cfg.Bounce,
		floorDrag:   w.cfg.FloorDrag,
	}
	for i := range w.points {
		w.points[i].integrate(gravity, damping)
	}
	for i := range w.points {
		w.points[i].clamp(b)
	}
	for n := 0; n < iterations; n++ {
		for i := range w.sticks {
			w.sticks[i].solve(w.points, w.cfg.Stiffness)
		}
	}
	return nil
}

// Points returns the current point positions in creation order.
func (w *World) Points() []Vec {
	out := make([]Vec, len(w.points))
	for i, p := range w.points {
		out[i] = Vec{X: p.X, Y: p.Y}
	}
	return out
}

// Sticks returns the current stick endpoints in creation order.
func (w *World) Sticks() []Segment {
	out := make([]Segment, len(w.sticks))
	for i, s := range w.sticks {
		a, b := w.points[s.A], w.points[s.B]
		out[i] = Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
	}
	return out
}

// Bounds returns the axis-aligned box around all points.
func (w *World) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(w.points) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range w.points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY, true
}

func (w *World) valid(id PointID) bool {
	return id >= 0 && int(id) < len(w.points)
}
