package ant

import (
	"strconv"

	"langton/internal/core"
)

// Config holds the construction parameters of an Engine.
type Config struct {
	Shape Shape

	Width  int
	Height int

	HalfExtent int

	CellSize int
}

// DefaultConfig returns a 50×50 origin-anchored grid with 10px cells.
func DefaultConfig() Config {
	return Config{
		Shape:      ShapeRect,
		Width:      50,
		Height:     50,
		HalfExtent: 25,
		CellSize:   DefaultCellSize,
	}
}

// Viewport returns the initial viewport described by the config.
func (c Config) Viewport() Viewport {
	if c.Shape == ShapeCentered {
		return CenteredViewport(c.HalfExtent, c.HalfExtent)
	}
	return RectViewport(c.Width, c.Height)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values are ignored; extents are clamped to their valid range
// and a non-positive cell size keeps the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["shape"]; ok {
		if parsed, err := ParseShape(v); err == nil {
			c.Shape = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = core.ClampInt(parsed, 1, MaxExtent)
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = core.ClampInt(parsed, 1, MaxExtent)
		}
	}
	if v, ok := cfg["half"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.HalfExtent = core.ClampInt(parsed, MinZoom, MaxZoom)
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	return c
}
