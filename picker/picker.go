// Package picker answers "which point is under the cursor" using a chipmunk
// space that mirrors the positions of a verlet world.
package picker

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickman/verlet"
)

const (
	// DefaultRadius is the grab radius around a point, in pixels.
	DefaultRadius = 50.0
	// HandleRadius is the size of the circle registered for each point.
	HandleRadius = 4.0

	syncDt = 1.0 / 60.0
)

// Picker owns a chipmunk space with one kinematic circle per world point.
type Picker struct {
	space  *cp.Space
	bodies []*cp.Body

	shapeToPoint map[*cp.Shape]verlet.PointID
}

// New creates an empty picker.
func New() *Picker {
	p := &Picker{}
	p.reset()
	return p
}

func (p *Picker) reset() {
	p.space = cp.NewSpace()
	p.bodies = nil
	p.shapeToPoint = make(map[*cp.Shape]verlet.PointID)
}

// Space returns the underlying chipmunk space for debug drawing.
func (p *Picker) Space() *cp.Space {
	if p == nil {
		return nil
	}
	return p.space
}

// Len returns how many points are mirrored.
func (p *Picker) Len() int {
	return len(p.bodies)
}

// Sync copies point positions from w into the space, adding handles for new
// points. A world that shrank (after Reset) rebuilds the space.
func (p *Picker) Sync(w *verlet.World) {
	if p == nil || w == nil {
		return
	}
	if w.Len() < len(p.bodies) {
		p.reset()
	}

	for i, v := range w.Points() {
		if i >= len(p.bodies) {
			p.add(verlet.PointID(i))
		}
		p.bodies[i].SetPosition(cp.Vector{X: v.X, Y: v.Y})
	}
	// kinematic bodies have zero velocity; stepping only refreshes the shape index
	p.space.Step(syncDt)
}

func (p *Picker) add(id verlet.PointID) {
	body := p.space.AddBody(cp.NewKinematicBody())
	shape := p.space.AddShape(cp.NewCircle(body, HandleRadius, cp.Vector{}))
	p.bodies = append(p.bodies, body)
	p.shapeToPoint[shape] = id
}

// Nearest returns the point whose center lies closest to (x, y) within maxDist.
func (p *Picker) Nearest(x, y, maxDist float64) (verlet.PointID, bool) {
	if p == nil || p.space == nil || len(p.bodies) == 0 {
		return -1, false
	}
	// point queries measure to the circle edge
	info := p.space.PointQueryNearest(cp.Vector{X: x, Y: y}, maxDist-HandleRadius, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return -1, false
	}
	id, ok := p.shapeToPoint[info.Shape]
	return id, ok
}
