package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is a single drawn cell, colors stay in float RGB until flushed so fades can blend them
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	Attrs tcell.AttrMask

	// Cont marks the trailing column of a wide rune, never flushed on its own
	Cont bool
}

// Style converts cell colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.Fg)).
		Background(tcellColor(c.Bg)).
		Attributes(c.Attrs)
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade blends the cell toward bg, alpha 1 keeps the cell, 0 yields bg
// Blending happens in L*a*b* so the ramp looks linear
func (c Cell) Fade(bg colorful.Color, alpha float64) Cell {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	c.Fg = bg.BlendLab(c.Fg, alpha).Clamped()
	c.Bg = bg.BlendLab(c.Bg, alpha).Clamped()
	return c
}
