package ragdoll

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/stickman/verlet"
)

func newWorld(t *testing.T) *verlet.World {
	t.Helper()
	w, err := verlet.NewWorld(verlet.DefaultConfig(1280, 720))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestBuildTopology(t *testing.T) {
	w := newWorld(t)
	r, err := Build(w, 200, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Len() != 12 {
		t.Fatalf("points got=%d want=12", w.Len())
	}
	if w.StickLen() != 15 || len(r.Sticks) != 15 {
		t.Fatalf("sticks got=%d/%d want=15", w.StickLen(), len(r.Sticks))
	}

	head, _ := w.Point(r.Point(Head))
	if head.X != 200 || head.Y != 100 {
		t.Fatalf("head got=(%f,%f) want=(200,100)", head.X, head.Y)
	}
	foot, _ := w.Point(r.Point(RightFoot))
	if foot.X != 220 || foot.Y != 290 {
		t.Fatalf("right foot got=(%f,%f) want=(220,290)", foot.X, foot.Y)
	}

	neck, _ := w.Stick(r.Sticks[0])
	if neck.Length != 25 {
		t.Fatalf("head-neck rest length got=%f want=25", neck.Length)
	}
}

func TestBuildSpec(t *testing.T) {
	t.Run("scale_and_pins", func(t *testing.T) {
		w := newWorld(t)
		r, err := BuildSpec(w, Spec{X: 100, Y: 50, Scale: 2, Pinned: []string{"head", "left_hand"}})
		if err != nil {
			t.Fatalf("BuildSpec: %v", err)
		}
		hips, _ := w.Point(r.Point(Hips))
		if hips.Y != 250 {
			t.Fatalf("hips y got=%f want=250", hips.Y)
		}
		for _, j := range []Joint{Head, LeftHand} {
			p, _ := w.Point(r.Point(j))
			if !p.Pinned {
				t.Fatalf("%s should be pinned", j)
			}
		}
		if p, _ := w.Point(r.Point(Torso)); p.Pinned {
			t.Fatalf("torso should not be pinned")
		}
	})

	t.Run("unknown_joint", func(t *testing.T) {
		w := newWorld(t)
		if _, err := BuildSpec(w, Spec{Pinned: []string{"tail"}}); err == nil {
			t.Fatalf("expected error for unknown joint")
		}
	})

	t.Run("negative_scale", func(t *testing.T) {
		w := newWorld(t)
		_, err := BuildSpec(w, Spec{Scale: -1})
		if !errors.Is(err, verlet.ErrInvalidConfiguration) {
			t.Fatalf("got err=%v want ErrInvalidConfiguration", err)
		}
	})

	t.Run("walk_default", func(t *testing.T) {
		off := false
		if !(Spec{}).Walks() || (Spec{Walk: &off}).Walks() {
			t.Fatalf("Walks default should be true and respect an explicit false")
		}
	})
}

func TestParseJoint(t *testing.T) {
	for j := Joint(0); j < jointCount; j++ {
		got, ok := ParseJoint(j.String())
		if !ok || got != j {
			t.Fatalf("ParseJoint(%q) got=%v,%v", j.String(), got, ok)
		}
	}
}

func TestRagdollSettlesOnFloor(t *testing.T) {
	w := newWorld(t)
	r, err := Build(w, 400, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p := verlet.DefaultParams()
	for i := 0; i < 600; i++ {
		if err := p.Step(w); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	floor := w.Config().Floor()
	for j := Joint(0); j < jointCount; j++ {
		pt, _ := w.Point(r.Point(j))
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			t.Fatalf("%s is NaN", j)
		}
		if pt.Y > floor+10 {
			t.Fatalf("%s sank below the floor: y=%f floor=%f", j, pt.Y, floor)
		}
	}
}

func TestAnimatorMovesOnlyPlantedFeet(t *testing.T) {
	w := newWorld(t)
	floor := w.Config().Floor()
	standing, err := Build(w, 300, floor-190)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	falling, err := Build(w, 700, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	before := w.Points()
	NewAnimator().Update(w, []*Ragdoll{standing, falling}, 0.1)
	after := w.Points()

	for _, j := range []Joint{LeftFoot, RightFoot} {
		id := standing.Point(j)
		if before[id] == after[id] {
			t.Fatalf("planted %s did not move", j)
		}
		p, _ := w.Point(id)
		if _, vy := p.Velocity(); vy >= 0 {
			t.Fatalf("planted %s should be lifted: vy=%f", j, vy)
		}

		id = falling.Point(j)
		if before[id] != after[id] {
			t.Fatalf("airborne %s moved", j)
		}
	}
}

func TestAnimatorDisabled(t *testing.T) {
	w := newWorld(t)
	r, err := Build(w, 300, w.Config().Floor()-190)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	before := w.Points()

	a := NewAnimator()
	a.Enabled = false
	a.Update(w, []*Ragdoll{r}, 0.1)

	r.Walk = false
	NewAnimator().Update(w, []*Ragdoll{r}, 0.1)

	after := w.Points()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("point %d moved with animation off", i)
		}
	}
}
