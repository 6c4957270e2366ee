package picker

import (
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

func TestNearest(t *testing.T) {
	w := newWorld(t)
	a := w.AddPoint(100, 100, false)
	b := w.AddPoint(130, 100, false)
	w.AddPoint(600, 400, false)

	p := New()
	p.Sync(w)
	if p.Len() != 3 {
		t.Fatalf("Len got=%d want=3", p.Len())
	}

	cases := []struct {
		name   string
		x, y   float64
		want   verlet.PointID
		wantOK bool
	}{
		{"on_a", 100, 100, a, true},
		{"closer_to_b", 120, 105, b, true},
		{"within_radius", 100, 140, a, true},
		{"outside_radius", 300, 300, -1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := p.Nearest(c.x, c.y, DefaultRadius)
			if ok != c.wantOK || (ok && got != c.want) {
				t.Fatalf("Nearest(%g,%g) got=%d,%v want=%d,%v", c.x, c.y, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestSyncFollowsWorld(t *testing.T) {
	w := newWorld(t)
	id := w.AddPoint(100, 100, false)

	p := New()
	p.Sync(w)
	if err := w.SetPosition(id, 700, 500); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	p.Sync(w)

	if _, ok := p.Nearest(100, 100, DefaultRadius); ok {
		t.Fatalf("stale position still pickable")
	}
	if got, ok := p.Nearest(705, 498, DefaultRadius); !ok || got != id {
		t.Fatalf("moved point not found: got=%d,%v", got, ok)
	}

	w.Reset()
	p.Sync(w)
	if p.Len() != 0 {
		t.Fatalf("Len after reset got=%d want=0", p.Len())
	}
	if _, ok := p.Nearest(700, 500, DefaultRadius); ok {
		t.Fatalf("empty picker returned a point")
	}
}
