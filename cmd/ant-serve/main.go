// Command ant-serve runs one automaton and streams it to websocket viewers.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"langton/internal/ant"
	"langton/internal/app"
	"langton/internal/core"
	"langton/internal/stream"
	"langton/pkg/logger"

	"golang.org/x/sync/errgroup"
)

func main() {
	logger.Init()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	factory, ok := ant.Variants()[cfg.Variant]
	if !ok {
		logger.Log.Fatalf("unknown variant %q", cfg.Variant)
	}

	ctrl := app.NewController(factory(cfg.EngineConfig()), core.NewFixedStep(cfg.Speed))
	if !cfg.Paused {
		ctrl.Start()
	}

	hub := stream.NewBroadcaster()
	session := stream.NewSession(ctrl, hub)
	server := stream.NewServer(*addr, session, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return session.Run(ctx) })
	g.Go(func() error { return server.Run(ctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Fatal("server stopped")
	}
	logger.Log.Info("shutdown complete")
}
