package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/stickman/common"
	"github.com/milk9111/stickman/verlet"
	"golang.org/x/image/colornames"
)

// drawWorld renders the floor, every stick, then every point on top.
func drawWorld(screen *ebiten.Image, g *Game) {
	th := g.scene.Theme
	w := g.scene.World
	cfg := w.Config()

	screen.Fill(th.Background)

	floor := float32(cfg.Floor())
	vector.StrokeLine(screen, 0, floor, float32(cfg.Width), floor, common.FloorWidth, th.Floor, true)

	for _, s := range w.Sticks() {
		vector.StrokeLine(screen, float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2), common.StickWidth, th.Stick, true)
	}

	for i := 0; i < w.Len(); i++ {
		p, _ := w.Point(verlet.PointID(i))
		clr := th.Point
		if p.Pinned {
			clr = th.Pinned
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), common.PointRadius, clr, true)
	}

	if g.dragging {
		if p, ok := w.Point(g.dragPoint); ok {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), common.PointRadius*2, 1, colornames.Yellow, true)
		}
	}
}

func drawHUD(screen *ebiten.Image, g *Game) {
	p := g.scene.Params
	status := ""
	if g.paused {
		status = "  [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  points: %d  sticks: %d  FPS: %.1f%s\ngravity %.2f  damping %.3f  iterations %d",
		g.scene.Name, g.scene.World.Len(), g.scene.World.StickLen(), ebiten.ActualFPS(), status,
		p.Gravity, p.Damping, p.Iterations,
	))
	if g.lastError != "" {
		ebitenutil.DebugPrintAt(screen, "reload failed: "+g.lastError, 10, 40)
	}
}
