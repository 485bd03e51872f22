package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Variant string
	Width   int
	Height  int
	Half    int
	Cell    int
	Speed   int
	TPS     int
	Paused  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Variant: "langton", Width: 50, Height: 50, Half: 25, Cell: 10, Speed: 100, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Variant, "variant", c.Variant, "engine variant (langton, langton-centered)")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width in cells (langton)")
	fs.IntVar(&c.Height, "h", c.Height, "viewport height in cells (langton)")
	fs.IntVar(&c.Half, "half", c.Half, "viewport half-extent in cells (langton-centered)")
	fs.IntVar(&c.Cell, "cell", c.Cell, "initial cell size in pixels")
	fs.IntVar(&c.Speed, "speed", c.Speed, "steps per second (1-1000)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the ant stopped")
}

// EngineConfig converts the flags into a factory configuration map.
func (c *Config) EngineConfig() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"half": strconv.Itoa(c.Half),
		"cell": strconv.Itoa(c.Cell),
	}
}
