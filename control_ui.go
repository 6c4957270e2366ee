package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stickman/common"
	"github.com/milk9111/stickman/verlet"
	"golang.org/x/image/font/basicfont"
)

const (
	gravityStep   = 0.05
	gravityMax    = 2.0
	dampingStep   = 0.001
	dampingMin    = 0.9
	iterationsMax = 30
)

// ControlPanel is the tuning overlay. It edits the scene params in place.
type ControlPanel struct {
	UI    *ebitenui.UI
	panel *widget.Container

	gravity    *widget.Text
	damping    *widget.Text
	iterations *widget.Text
	pause      *widget.Button
	animate    *widget.Button
}

// NewControlPanel builds a panel in the top-right corner with +/- steppers for
// every step parameter.
func NewControlPanel(g *Game) *ControlPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	ctl := &ControlPanel{}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
				ctl.Refresh(g)
			}),
		)
	}

	stepper := func(value **widget.Text, dec, inc func()) *widget.Container {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)
		*value = widget.NewText(
			widget.TextOpts.Text("", &face, white),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 0)),
		)
		row.AddChild(*value)
		row.AddChild(button("-", dec))
		row.AddChild(button("+", inc))
		return row
	}

	ctl.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 14, Right: 14}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)

	ctl.panel.AddChild(widget.NewText(widget.TextOpts.Text("Tuning", &face, white)))
	ctl.panel.AddChild(stepper(&ctl.gravity,
		func() { g.adjustParams(func(p *verlet.Params) { p.Gravity -= gravityStep }) },
		func() { g.adjustParams(func(p *verlet.Params) { p.Gravity += gravityStep }) },
	))
	ctl.panel.AddChild(stepper(&ctl.damping,
		func() { g.adjustParams(func(p *verlet.Params) { p.Damping -= dampingStep }) },
		func() { g.adjustParams(func(p *verlet.Params) { p.Damping += dampingStep }) },
	))
	ctl.panel.AddChild(stepper(&ctl.iterations,
		func() { g.adjustParams(func(p *verlet.Params) { p.Iterations-- }) },
		func() { g.adjustParams(func(p *verlet.Params) { p.Iterations++ }) },
	))

	ctl.pause = button("Pause", func() { g.paused = !g.paused })
	ctl.animate = button("Walk: On", func() { g.animator.Enabled = !g.animator.Enabled })
	ctl.panel.AddChild(ctl.pause)
	ctl.panel.AddChild(ctl.animate)
	ctl.panel.AddChild(button("Reload scene", func() { g.reload() }))
	ctl.panel.AddChild(button("Copy params", func() { g.copyParams() }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(ctl.panel)

	ctl.UI = &ebitenui.UI{Container: root}
	ctl.Refresh(g)
	return ctl
}

// Refresh rewrites labels from the current game state.
func (ctl *ControlPanel) Refresh(g *Game) {
	if ctl == nil || g == nil || g.scene == nil {
		return
	}
	p := g.scene.Params
	ctl.gravity.Label = fmt.Sprintf("gravity    %.2f", p.Gravity)
	ctl.damping.Label = fmt.Sprintf("damping    %.3f", p.Damping)
	ctl.iterations.Label = fmt.Sprintf("iterations %d", p.Iterations)
	setButtonLabel(ctl.pause, "Pause", "Resume", g.paused)
	setButtonLabel(ctl.animate, "Walk: On", "Walk: Off", !g.animator.Enabled)
}

// Contains reports whether a screen position falls on the panel.
func (ctl *ControlPanel) Contains(x, y int) bool {
	if ctl == nil || ctl.panel == nil {
		return false
	}
	return image.Pt(x, y).In(ctl.panel.GetWidget().Rect)
}

func setButtonLabel(b *widget.Button, off, on string, active bool) {
	if b == nil {
		return
	}
	text := b.Text()
	if text == nil {
		return
	}
	if active {
		text.Label = on
	} else {
		text.Label = off
	}
}

// clampParams keeps panel edits inside the range Step accepts.
func clampParams(p verlet.Params) verlet.Params {
	p.Gravity = common.Snap(common.Clamp(p.Gravity, -gravityMax, gravityMax), gravityStep)
	p.Damping = common.Snap(common.Clamp(p.Damping, dampingMin, 1), dampingStep)
	if p.Iterations < 1 {
		p.Iterations = 1
	}
	if p.Iterations > iterationsMax {
		p.Iterations = iterationsMax
	}
	return p
}
