package render

import "image/color"

// Theme holds the presentation colors. Nothing in the automaton reads it.
type Theme struct {
	White  color.RGBA
	Black  color.RGBA
	Ant    color.RGBA
	Margin color.RGBA

	Panel       color.RGBA
	PanelText   color.RGBA
	PanelMuted  color.RGBA
	Description color.RGBA

	Start       color.RGBA
	StartActive color.RGBA
	Stop        color.RGBA
	StopActive  color.RGBA
	Reset       color.RGBA
	ResetActive color.RGBA
}

// Palette indices used by Canvas buffers.
const (
	CellWhite uint8 = iota
	CellBlack
	CellAnt
)

// DefaultTheme uses the clrs.cc palette.
var DefaultTheme = Theme{
	White:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Black:  color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF},
	Ant:    color.RGBA{R: 0xFF, G: 0x41, B: 0x36, A: 0xFF},
	Margin: color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF},

	Panel:       color.RGBA{R: 0xB1, G: 0x0D, B: 0xC9, A: 0xFF},
	PanelText:   color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	PanelMuted:  color.RGBA{R: 0xA0, G: 0xA0, B: 0xAA, A: 0xFF},
	Description: color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF},

	Start:       color.RGBA{R: 0x2E, G: 0xCC, B: 0x40, A: 0xFF},
	StartActive: color.RGBA{R: 0x22, G: 0x8B, B: 0x22, A: 0xFF},
	Stop:        color.RGBA{R: 0xFF, G: 0x41, B: 0x36, A: 0xFF},
	StopActive:  color.RGBA{R: 0x8B, G: 0x00, B: 0x00, A: 0xFF},
	Reset:       color.RGBA{R: 0x00, G: 0x74, B: 0xD9, A: 0xFF},
	ResetActive: color.RGBA{R: 0x27, G: 0x40, B: 0x8B, A: 0xFF},
}

// Palette returns the cell palette indexed by CellWhite, CellBlack, CellAnt.
func (t Theme) Palette() []color.RGBA {
	return []color.RGBA{t.White, t.Black, t.Ant}
}
