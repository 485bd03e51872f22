// Command ant-trace runs the automaton headless and reports where it went.
package main

import (
	"flag"
	"fmt"
	"strings"

	"langton/internal/ant"
	"langton/internal/render"
	"langton/pkg/logger"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	logger.Init()

	steps := flag.Int("steps", 11000, "number of steps to simulate")
	variant := flag.String("variant", "langton", "engine variant (langton, langton-centered)")
	every := flag.Int("every", 0, "print a progress line every N steps (0 disables)")
	ascii := flag.Bool("ascii", false, "dump the final viewport as text")
	var overrides kvList
	flag.Var(&overrides, "set", "engine option in key=value form: shape, w, h, half, cell (repeatable)")
	flag.Parse()

	factory, ok := ant.Variants()[*variant]
	if !ok {
		logger.Log.Fatalf("unknown variant %q", *variant)
	}

	cfg := make(map[string]string, len(overrides))
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			logger.Log.WithField("set", kv).Warn("ignoring malformed override")
			continue
		}
		cfg[parts[0]] = parts[1]
	}

	engine := factory(cfg)
	probe := &ant.HighwayProbe{}
	engine.Subscribe(probe)

	var canvas *render.Canvas
	if *ascii {
		canvas = render.NewCanvas(engine, render.DefaultTheme)
		engine.Subscribe(canvas)
	}

	for i := 1; i <= *steps; i++ {
		engine.Step()
		if *every > 0 && i%*every == 0 {
			a := engine.Ant()
			fmt.Printf("step %d: ant=(%d,%d) black=%d\n", i, a.Pos.X, a.Pos.Y, engine.BlackCount())
		}
	}

	printReport(engine, probe)

	if canvas != nil {
		canvas.Sync()
		fmt.Println()
		fmt.Print(canvas.ASCII())
	}
}

func printReport(engine *ant.Engine, probe *ant.HighwayProbe) {
	a := engine.Ant()
	fmt.Printf("Variant: %s\n", engine.Name())
	fmt.Printf("Steps: %d\n", engine.Steps())
	fmt.Printf("Ant: (%d,%d) heading %s\n", a.Pos.X, a.Pos.Y, a.Heading)
	fmt.Printf("Black cells: %d\n", engine.BlackCount())

	if lo, hi, ok := engine.Grid().Bounds(); ok {
		fmt.Printf("Bounds: (%d,%d)..(%d,%d), %dx%d cells\n",
			lo.X, lo.Y, hi.X, hi.Y, hi.X-lo.X+1, hi.Y-lo.Y+1)
	}

	v := engine.Viewport()
	lo, hi := v.Min(), v.Max()
	fmt.Printf("Viewport: %s (%d,%d)..(%d,%d), ant visible=%t\n",
		v.Shape, lo.X, lo.Y, hi.X, hi.Y, engine.IsVisible(a.Pos))

	if probe.Found() {
		off := probe.Offset()
		fmt.Printf("Highway: onset ~%d, drift (%d,%d) per %d steps\n",
			probe.Onset(), off.X, off.Y, ant.HighwayPeriod)
	} else {
		fmt.Println("Highway: not detected")
	}
}
