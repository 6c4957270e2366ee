// Package ragdoll assembles stickman figures out of verlet points and sticks
// and drives a simple procedural walk for figures standing on the floor.
package ragdoll

import (
	"fmt"

	"github.com/milk9111/stickman/verlet"
)

// Joint names a point on the figure.
type Joint int

const (
	Head Joint = iota
	Neck
	Torso
	LeftElbow
	LeftHand
	RightElbow
	RightHand
	Hips
	LeftKnee
	LeftFoot
	RightKnee
	RightFoot
	jointCount
)

var jointNames = [...]string{
	Head:       "head",
	Neck:       "neck",
	Torso:      "torso",
	LeftElbow:  "left_elbow",
	LeftHand:   "left_hand",
	RightElbow: "right_elbow",
	RightHand:  "right_hand",
	Hips:       "hips",
	LeftKnee:   "left_knee",
	LeftFoot:   "left_foot",
	RightKnee:  "right_knee",
	RightFoot:  "right_foot",
}

func (j Joint) String() string {
	if j < 0 || j >= jointCount {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

// ParseJoint resolves a joint by its snake_case name.
func ParseJoint(name string) (Joint, bool) {
	for j, n := range jointNames {
		if n == name {
			return Joint(j), true
		}
	}
	return 0, false
}

// offsets from the head at scale 1
var restPose = [jointCount][2]float64{
	Head:       {0, 0},
	Neck:       {0, 25},
	Torso:      {0, 80},
	LeftElbow:  {-20, 40},
	LeftHand:   {-40, 60},
	RightElbow: {20, 40},
	RightHand:  {40, 60},
	Hips:       {0, 100},
	LeftKnee:   {-15, 140},
	LeftFoot:   {-20, 190},
	RightKnee:  {15, 140},
	RightFoot:  {20, 190},
}

// bones, followed by the braces that keep the torso from folding
var bones = [][2]Joint{
	{Head, Neck},
	{Neck, Torso},
	{Neck, LeftElbow},
	{LeftElbow, LeftHand},
	{Neck, RightElbow},
	{RightElbow, RightHand},
	{Torso, Hips},
	{Hips, LeftKnee},
	{LeftKnee, LeftFoot},
	{Hips, RightKnee},
	{RightKnee, RightFoot},
	{Head, Torso},
	{LeftElbow, Torso},
	{RightElbow, Torso},
	{Hips, Head},
}

// Spec places a ragdoll in a scene.
type Spec struct {
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Scale  float64  `yaml:"scale"`
	Pinned []string `yaml:"pinned"`
	Walk   *bool    `yaml:"walk"`
}

// Walks reports whether the animator should drive this figure. Defaults to true.
func (s Spec) Walks() bool {
	return s.Walk == nil || *s.Walk
}

// Ragdoll is a handle on the points of one figure.
type Ragdoll struct {
	Joints [jointCount]verlet.PointID
	Sticks []verlet.StickID
	Walk   bool
}

// Point returns the id of a joint.
func (r *Ragdoll) Point(j Joint) verlet.PointID {
	return r.Joints[j]
}

// Build adds a unit-scale walking ragdoll with its head at (x, y).
func Build(w *verlet.World, x, y float64) (*Ragdoll, error) {
	return BuildSpec(w, Spec{X: x, Y: y, Scale: 1})
}

// BuildSpec adds the ragdoll described by spec to w.
func BuildSpec(w *verlet.World, spec Spec) (*Ragdoll, error) {
	if w == nil {
		return nil, fmt.Errorf("ragdoll: world is nil")
	}
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, fmt.Errorf("ragdoll: scale %g: %w", scale, verlet.ErrInvalidConfiguration)
	}

	pinned := make(map[Joint]bool, len(spec.Pinned))
	for _, name := range spec.Pinned {
		j, ok := ParseJoint(name)
		if !ok {
			return nil, fmt.Errorf("ragdoll: unknown joint %q", name)
		}
		pinned[j] = true
	}

	r := &Ragdoll{Walk: spec.Walks()}
	for j := Joint(0); j < jointCount; j++ {
		off := restPose[j]
		r.Joints[j] = w.AddPoint(spec.X+off[0]*scale, spec.Y+off[1]*scale, pinned[j])
	}

	r.Sticks = make([]verlet.StickID, 0, len(bones))
	for _, b := range bones {
		id, err := w.AddStick(r.Joints[b[0]], r.Joints[b[1]])
		if err != nil {
			return nil, fmt.Errorf("ragdoll: bone %s-%s: %w", b[0], b[1], err)
		}
		r.Sticks = append(r.Sticks, id)
	}
	return r, nil
}
