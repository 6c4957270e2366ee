package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame pointer and key state the sandbox reacts to.
type Input struct {
	// CursorX/Y are in world coordinates, which equal screen coordinates here.
	CursorX float64
	CursorY float64

	// GrabPressed is true on the frame the left button went down.
	GrabPressed bool
	// GrabHeld is true while the left button is down.
	GrabHeld bool
	// PinPressed is true on the frame the right button went down.
	PinPressed bool

	PausePressed   bool
	ReloadPressed  bool
	CopyPressed    bool
	PanelPressed   bool
	DebugPressed   bool
	AnimatePressed bool
	QuitPressed    bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls ebiten for this frame.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.CursorX = float64(mx)
	i.CursorY = float64(my)

	i.GrabPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.GrabHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.PinPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	// touch drags behave like the left mouse button
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		i.CursorX, i.CursorY = float64(tx), float64(ty)
		i.GrabHeld = true
		i.GrabPressed = i.GrabPressed || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	}

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.ReloadPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.PanelPressed = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.AnimatePressed = inpututil.IsKeyJustPressed(ebiten.KeyW)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}
