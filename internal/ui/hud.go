//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"langton/internal/core"
	"langton/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Target is what the controls panel drives.
type Target interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	Parameters() core.ParameterSnapshot
	Start()
	Stop()
	Reset()
	Running() bool
}

// HUD renders the title, description and controls to the right of the grid.
type HUD struct {
	target Target
	theme  render.Theme
	width  int
	panel  *ebiten.Image
	pixel  *ebiten.Image

	descLines []string
	buttons   []hudButton
	controls  []hudControlState
	snapshot  core.ParameterSnapshot

	panelOffsetX int
	statusTop    int
}

type hudButton struct {
	label  string
	rect   image.Rectangle
	fill   color.RGBA
	active color.RGBA
	press  func()
	lit    func() bool
}

type hudControlState struct {
	control   core.ParameterControl
	value     int
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a controls panel of the given width.
func NewHUD(target Target, width int, theme render.Theme) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{target: target, theme: theme, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.descLines = Wrap(Description(), (width-4*panelPadding)/glyphWidth)
	for _, ctrl := range target.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl})
	}
	h.layout()
	return h
}

func (h *HUD) layout() {
	top := panelPadding + titleHeight + len(h.descLines)*textLine + 2*panelPadding
	labels := []struct {
		label        string
		fill, active color.RGBA
		press        func()
		lit          func() bool
	}{
		{"START", h.theme.Start, h.theme.StartActive, h.target.Start, h.target.Running},
		{"STOP", h.theme.Stop, h.theme.StopActive, h.target.Stop, func() bool { return !h.target.Running() }},
		{"RESET", h.theme.Reset, h.theme.ResetActive, h.target.Reset, nil},
	}
	top += textLine
	x := panelPadding
	for _, l := range labels {
		rect := image.Rect(x, top, x+buttonWidth, top+buttonHeight)
		h.buttons = append(h.buttons, hudButton{label: l.label, rect: rect, fill: l.fill, active: l.active, press: l.press, lit: l.lit})
		x += buttonWidth + buttonGap
	}
	top += buttonHeight + panelPadding

	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
	h.statusTop = top + len(h.controls)*lineHeight + panelPadding
}

// Update refreshes the cached parameters and handles clicks. panelOffsetX is
// the screen x of the panel's left edge.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.target.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		if p, ok := h.snapshot.Lookup(state.control.Key); ok {
			if v, err := strconv.Atoi(p.Value); err == nil {
				state.value, state.hasValue = v, true
			}
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for _, b := range h.buttons {
		if pointInRect(px, my, b.rect) {
			b.press()
			return
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !state.control.CanAdjust(state.value, direction) {
		return
	}
	target := state.control.Adjust(state.value, direction)
	if h.target.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(h.theme.Panel)

	face := basicfont.Face7x13
	text.Draw(h.panel, "Langton's Ant", face, panelPadding, panelPadding+headerBaseline, h.theme.PanelText)

	descTop := panelPadding + titleHeight
	descRect := image.Rect(panelPadding, descTop, h.width-panelPadding, descTop+len(h.descLines)*textLine+panelPadding)
	h.fillRect(h.panel, descRect, h.theme.Description)
	for i, line := range h.descLines {
		text.Draw(h.panel, line, face, 2*panelPadding, descTop+panelPadding/2+(i+1)*textLine-3, h.theme.PanelText)
	}

	controlsLabelY := descRect.Max.Y + panelPadding + labelBaseline/2
	text.Draw(h.panel, "Controls", face, panelPadding, controlsLabelY, h.theme.PanelText)
	for _, b := range h.buttons {
		fill := b.fill
		if b.lit != nil && b.lit() {
			fill = b.active
		}
		h.drawButton(b.rect, b.label, fill, h.theme.Description)
	}

	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}
	h.drawStatus()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(state *hudControlState) {
	face := basicfont.Face7x13
	labelY := state.top + labelBaseline
	text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, h.theme.PanelText)

	value := "--"
	valueColor := h.theme.PanelMuted
	if state.hasValue {
		value = strconv.Itoa(state.value)
		valueColor = h.theme.PanelText
	}
	bounds := text.BoundString(face, value)
	text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), labelY, valueColor)

	enabled := func(dir int) color.RGBA {
		if state.hasValue && state.control.CanAdjust(state.value, dir) {
			return h.theme.Description
		}
		return h.theme.PanelMuted
	}
	h.drawButton(state.minusRect, "-", enabled(-1), h.theme.PanelText)
	h.drawButton(state.plusRect, "+", enabled(1), h.theme.PanelText)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := h.statusTop
	for _, group := range h.snapshot.Groups {
		if group.Name != "Ant" {
			continue
		}
		for _, p := range group.Params {
			y += textLine
			text.Draw(h.panel, p.Label, face, panelPadding, y, h.theme.PanelText)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, h.theme.PanelText)
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, bg, fg color.RGBA) {
	h.fillRect(h.panel, rect, bg)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(h.pixel, op)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	glyphWidth     = 7
	textLine       = 15
	titleHeight    = 30
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	buttonWidth    = 64
	buttonHeight   = 28
	headerBaseline = 18
	labelBaseline  = 24
)
