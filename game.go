package main

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stickman/picker"
	"github.com/milk9111/stickman/prefabs"
	"github.com/milk9111/stickman/ragdoll"
	"github.com/milk9111/stickman/scene"
	"github.com/milk9111/stickman/verlet"
)

// Game is the single owner of the simulation. Everything that mutates the
// world (input, animation, reloads) runs from Update between steps.
type Game struct {
	sceneName string
	scene     *scene.Scene

	input    *Input
	animator *ragdoll.Animator
	picker   *picker.Picker
	watcher  *prefabs.Watcher
	panel    *ControlPanel

	elapsed   float64
	paused    bool
	showPanel bool
	debug     bool

	dragging  bool
	dragPoint verlet.PointID

	lastError string
}

// NewGame loads the named scene. A missing or invalid scene is fatal at startup;
// later reload failures keep the running scene.
func NewGame(sceneName string, debug bool) (*Game, error) {
	s, err := scene.Load(context.Background(), sceneName)
	if err != nil {
		return nil, err
	}

	g := &Game{
		sceneName: sceneName,
		scene:     s,
		input:     NewInput(),
		animator:  ragdoll.NewAnimator(),
		picker:    picker.New(),
		showPanel: true,
		debug:     debug,
	}
	g.picker.Sync(s.World)
	g.panel = NewControlPanel(g)

	if w, err := prefabs.NewWatcher(); err != nil {
		log.Printf("Game: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}

	g.handleKeys()
	g.drainWatcher()

	if g.showPanel {
		g.panel.UI.Update()
	}

	g.handlePointer()

	if !g.paused {
		g.elapsed += 1.0 / float64(ebiten.TPS())
		g.animator.Update(g.scene.World, g.scene.Ragdolls, g.elapsed)
		if err := g.scene.Step(); err != nil {
			return err
		}
	}

	g.picker.Sync(g.scene.World)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g)
	if g.debug {
		drawPickerDebug(screen, g.picker, g.input.CursorX, g.input.CursorY)
	}
	drawHUD(screen, g)
	if g.showPanel {
		g.panel.UI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.resizeViewport(outsideWidth, outsideHeight)
	cfg := g.scene.World.Config()
	return cfg.Width, cfg.Height
}

// resizeViewport moves the world's walls and floor to match the window.
// A minimized window reports a zero size and is ignored.
func (g *Game) resizeViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	cfg := g.scene.World.Config()
	if cfg.Width == width && cfg.Height == height {
		return
	}
	if err := g.scene.World.Resize(width, height); err != nil {
		log.Printf("Game: resize to %gx%g: %v", width, height, err)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the file watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Game: close watcher: %v", err)
		}
	}
}

func (g *Game) handleKeys() {
	in := g.input
	changed := false
	if in.PausePressed {
		g.paused = !g.paused
		changed = true
	}
	if in.AnimatePressed {
		g.animator.Enabled = !g.animator.Enabled
		changed = true
	}
	if in.PanelPressed {
		g.showPanel = !g.showPanel
	}
	if in.DebugPressed {
		g.debug = !g.debug
	}
	if in.ReloadPressed {
		g.reload()
		changed = true
	}
	if in.CopyPressed {
		g.copyParams()
	}
	if changed {
		g.panel.Refresh(g)
	}
}

// handlePointer grabs, drags and pins points. Position writes happen here,
// before the step, so a dragged point never tears mid-integration.
func (g *Game) handlePointer() {
	in := g.input
	w := g.scene.World
	overPanel := g.showPanel && g.panel.Contains(int(in.CursorX), int(in.CursorY))

	if in.GrabPressed && !overPanel {
		g.dragPoint, g.dragging = g.picker.Nearest(in.CursorX, in.CursorY, picker.DefaultRadius)
	}
	if !in.GrabHeld {
		g.dragging = false
	}
	if g.dragging {
		if err := w.SetPosition(g.dragPoint, in.CursorX, in.CursorY); err != nil {
			g.dragging = false
		}
	}

	if in.PinPressed && !overPanel {
		if id, ok := g.picker.Nearest(in.CursorX, in.CursorY, picker.DefaultRadius); ok {
			p, _ := w.Point(id)
			if err := w.SetPinned(id, !p.Pinned); err != nil {
				log.Printf("Game: pin %d: %v", id, err)
			}
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		change, ok := g.watcher.Poll()
		if !ok {
			break
		}
		log.Printf("Game: %s changed", change.Path)
		reload = true
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("Game: watcher: %v", err)
	default:
	}
	if reload {
		g.reload()
		g.panel.Refresh(g)
	}
}

// reload rebuilds the scene from disk. Tuning made in the panel is kept.
func (g *Game) reload() {
	s, err := scene.Load(context.Background(), g.sceneName)
	if err != nil {
		log.Printf("Game: reload %s: %v", g.sceneName, err)
		g.lastError = err.Error()
		return
	}
	s.Params = g.scene.Params
	g.scene = s
	g.dragging = false
	g.lastError = ""
	g.picker.Sync(s.World)
	log.Printf("Game: reloaded %s (%d points, %d sticks)", s.Name, s.World.Len(), s.World.StickLen())
}

// adjustParams applies a panel edit and keeps the result valid.
func (g *Game) adjustParams(edit func(p *verlet.Params)) {
	p := g.scene.Params
	edit(&p)
	p = clampParams(p)
	if err := p.Validate(); err != nil {
		log.Printf("Game: rejected params %+v: %v", p, err)
		return
	}
	g.scene.Params = p
}
