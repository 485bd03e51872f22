//go:build ebiten

package app

import (
	"time"

	"langton/internal/render"
	"langton/internal/ui"
	"langton/pkg/logger"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PanelWidth is the width of the controls panel to the right of the grid.
const PanelWidth = 300

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller, theme render.Theme) *Game {
	e := ctrl.Engine()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(e, theme),
		hud:     ui.NewHUD(ctrl, PanelWidth, theme),
		overlay: ui.NewOverlay(e, theme),
	}
}

// WindowSize returns the initial window size for the engine geometry.
func (g *Game) WindowSize() (int, int) {
	area := g.ctrl.Engine().Geometry().Area
	return area.W + PanelWidth, area.H
}

// Update handles per-frame input and advances the automaton.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctrl.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.zoom(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.zoom(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.ctrl.SetSpeed(g.ctrl.Speed() + 10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.ctrl.SetSpeed(g.ctrl.Speed() - 10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySummary()
	}

	g.overlay.Update()
	g.hud.Update(g.ctrl.Engine().Geometry().Area.W)

	g.ctrl.Advance(time.Now())
	return nil
}

func (g *Game) zoom(notches int) {
	if err := g.ctrl.Zoom(notches); err != nil {
		logger.Log.WithError(err).Warn("zoom rejected")
	}
}

func (g *Game) copySummary() {
	summary := g.ctrl.Summary()
	if err := clipboard.WriteAll(summary); err != nil {
		logger.Log.WithError(err).Warn("failed to copy summary to clipboard")
		return
	}
	logger.Log.WithField("summary", summary).Info("copied to clipboard")
}

// Draw renders the grid, the overlay and the controls panel.
func (g *Game) Draw(screen *ebiten.Image) {
	geom := g.ctrl.Engine().Geometry()
	g.painter.Blit(screen, geom)
	g.overlay.Draw(screen, geom)
	g.hud.Draw(screen, geom.Area.W)
}

// Layout gives the grid everything left of the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth - PanelWidth
	if w < 1 {
		w = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.ctrl.Engine().SetDisplayArea(w, outsideHeight)
	return w + PanelWidth, outsideHeight
}
