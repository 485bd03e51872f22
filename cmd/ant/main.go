//go:build ebiten

package main

import (
	"errors"
	"flag"

	"langton/internal/ant"
	"langton/internal/app"
	"langton/internal/core"
	"langton/internal/render"
	"langton/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger.Init()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := ant.Variants()[cfg.Variant]
	if !ok {
		logger.Log.Fatalf("unknown variant %q", cfg.Variant)
	}

	engine := factory(cfg.EngineConfig())
	ctrl := app.NewController(engine, core.NewFixedStep(cfg.Speed))
	if !cfg.Paused {
		ctrl.Start()
	}

	game := app.New(ctrl, render.DefaultTheme)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Langton's Ant — " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Log.WithField("variant", engine.Name()).Info("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal(err)
	}
}
