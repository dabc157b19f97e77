package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Region is a rectangular window onto a Target
// Coordinates are relative to the region origin, drawing is clipped to both the region and its
// clip rectangle
type Region struct {
	T    Target
	X, Y int // Absolute origin
	W, H int

	// Absolute clip, inherited by Sub
	clipX0, clipY0, clipX1, clipY1 int
}

// NewRegion creates a region covering the whole target
func NewRegion(t Target) Region {
	w, h := t.Size()
	return Region{T: t, W: w, H: h, clipX1: w, clipY1: h}
}

// Sub returns a nested region, it may extend beyond the parent but drawing stays clipped to it
func (r Region) Sub(x, y, w, h int) Region {
	s := Region{
		T: r.T,
		X: r.X + x, Y: r.Y + y,
		W: max(w, 0), H: max(h, 0),
	}
	s.clipX0 = max(r.clipX0, r.X, s.X)
	s.clipY0 = max(r.clipY0, r.Y, s.Y)
	s.clipX1 = min(r.clipX1, r.X+r.W, s.X+s.W)
	s.clipY1 = min(r.clipY1, r.Y+r.H, s.Y+s.H)
	return s
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Visible reports whether any cell of the region is drawable
func (r Region) Visible() bool {
	return r.clipX1 > r.clipX0 && r.clipY1 > r.clipY0
}

func (r Region) inClip(ax, ay int) bool {
	return ax >= r.clipX0 && ax < r.clipX1 && ay >= r.clipY0 && ay < r.clipY1
}

// Cell sets a single cell with clipping
func (r Region) Cell(x, y int, c Cell) {
	ax, ay := r.X+x, r.Y+y
	if !r.inClip(ax, ay) {
		return
	}
	r.T.Set(ax, ay, c)
}

// Fill paints every cell with bg
func (r Region) Fill(bg colorful.Color) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, Cell{Rune: ' ', Fg: bg, Bg: bg})
		}
	}
}

// Text draws s starting at (x, y) and returns the cell width written
// Wide runes occupy two columns, the trailing column is marked as continuation
func (r Region) Text(x, y int, s string, fg, bg colorful.Color, attrs tcell.AttrMask) int {
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		r.Cell(col, y, Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attrs})
		if w == 2 {
			r.Cell(col+1, y, Cell{Fg: fg, Bg: bg, Attrs: attrs, Cont: true})
		}
		col += w
	}
	return col - x
}

// TextFit draws s truncated with an ellipsis to fit the remaining width
func (r Region) TextFit(x, y int, s string, fg, bg colorful.Color, attrs tcell.AttrMask) int {
	avail := r.W - x
	if avail <= 0 {
		return 0
	}
	return r.Text(x, y, runewidth.Truncate(s, avail, "…"), fg, bg, attrs)
}

// LineStyle selects box drawing runes
type LineStyle uint8

const (
	LineSingle LineStyle = iota
	LineRounded
)

type lineSet struct {
	h, v, tl, tr, bl, br rune
}

var lineSets = [...]lineSet{
	LineSingle:  {'─', '│', '┌', '┐', '└', '┘'},
	LineRounded: {'─', '│', '╭', '╮', '╰', '╯'},
}

// Box fills the region with bg and draws a border, returns the inner region
func (r Region) Box(style LineStyle, border, bg colorful.Color) Region {
	r.Fill(bg)
	if r.W < 2 || r.H < 2 {
		return r.Sub(0, 0, 0, 0)
	}
	ls := lineSets[style]
	cell := func(ch rune) Cell { return Cell{Rune: ch, Fg: border, Bg: bg} }

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, cell(ls.h))
		r.Cell(x, r.H-1, cell(ls.h))
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, cell(ls.v))
		r.Cell(r.W-1, y, cell(ls.v))
	}
	r.Cell(0, 0, cell(ls.tl))
	r.Cell(r.W-1, 0, cell(ls.tr))
	r.Cell(0, r.H-1, cell(ls.bl))
	r.Cell(r.W-1, r.H-1, cell(ls.br))

	return r.Inset(1)
}

// HLine draws a horizontal rule on row y
func (r Region) HLine(y int, ch rune, fg, bg colorful.Color) {
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, Cell{Rune: ch, Fg: fg, Bg: bg})
	}
}
