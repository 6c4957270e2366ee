package script

import (
	"context"
	"testing"
	"time"

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

func TestRunBuildsStructure(t *testing.T) {
	w := newWorld(t)
	src := []byte(`
a := engine.point(args.x, args.y, true)
b := engine.point(args.x + 50, args.y)
engine.stick(a, b)
engine.pin(b, true)
`)
	res, err := Run(context.Background(), w, src, map[string]any{"x": 10, "y": 20.5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Points) != 2 || len(res.Sticks) != 1 {
		t.Fatalf("result got=%+v", res)
	}

	a, _ := w.Point(res.Points[0])
	b, _ := w.Point(res.Points[1])
	if a.X != 10 || a.Y != 20.5 || !a.Pinned {
		t.Fatalf("a got=%+v", a)
	}
	if b.X != 60 || !b.Pinned {
		t.Fatalf("b got=%+v", b)
	}
	s, _ := w.Stick(res.Sticks[0])
	if s.Length != 50 {
		t.Fatalf("stick length got=%f want=50", s.Length)
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"self_stick", "a := engine.point(1, 1)\nengine.stick(a, a)"},
		{"unknown_point", "engine.stick(0, 99)"},
		{"bad_argument", `engine.point("left", 1)`},
		{"wrong_arity", "engine.point(1)"},
		{"syntax", "engine.point(1, 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld(t)
			if _, err := Run(context.Background(), w, []byte(c.src), nil); err == nil {
				t.Fatalf("expected error")
			}
			if w.StickLen() != 0 {
				t.Fatalf("sticks added despite error: %d", w.StickLen())
			}
		})
	}
}

func TestRunHonorsContext(t *testing.T) {
	w := newWorld(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := Run(ctx, w, []byte("for {}"), nil); err == nil {
		t.Fatalf("expected runaway script to be stopped")
	}
}

func TestEmbeddedScripts(t *testing.T) {
	cases := []struct {
		name   string
		args   map[string]any
		points int
		sticks int
	}{
		{"rope", map[string]any{"segments": 5}, 6, 5},
		{"rope", nil, 11, 10},
		{"box", nil, 4, 6},
		{"cloth", map[string]any{"cols": 3, "rows": 2}, 6, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld(t)
			res, err := RunFile(context.Background(), w, c.name, c.args)
			if err != nil {
				t.Fatalf("RunFile: %v", err)
			}
			if len(res.Points) != c.points || len(res.Sticks) != c.sticks {
				t.Fatalf("got %d points %d sticks want %d/%d", len(res.Points), len(res.Sticks), c.points, c.sticks)
			}
			p, _ := w.Point(res.Points[0])
			if c.name != "box" && !p.Pinned {
				t.Fatalf("first point of %s should be pinned", c.name)
			}
		})
	}

	if got := Names(); len(got) != 3 {
		t.Fatalf("Names got=%v", got)
	}
}
