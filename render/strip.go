package render

import (
	"math"

	"github.com/lixenwraith/marquee/marquee"
)

// Strip draws marquee views, the canvas is reused between frames
type Strip struct {
	canvas *Canvas
	static []marquee.Placement
}

// NewStrip creates a strip renderer
func NewStrip() *Strip {
	return &Strip{canvas: NewCanvas(0, 0)}
}

// Draw renders v into dst, which must cover the marquee container
// Content is composed offscreen, shifted by the offset, then copied out through the edge fade.
// An unmeasured view draws its content once without motion
func (s *Strip) Draw(dst Region, v marquee.View, pal Palette) {
	w, h := dst.W, dst.H
	s.canvas.Resize(w, h)
	s.canvas.Clear(Cell{Rune: ' ', Fg: pal.PageBg, Bg: pal.PageBg})

	axis := v.Prims.Axis
	extent := w
	if axis == marquee.AxisY {
		extent = h
	}

	placements := v.Placements
	start := 0
	if v.Unit.Valid() && len(placements) > 0 {
		start = -int(math.Floor(v.Offset))
	} else {
		s.static = marquee.Layout(s.static, v.Items, v.Prims.Gap, axis, 1)
		placements = s.static
	}

	root := NewRegion(s.canvas)
	for _, p := range placements {
		pos := start + p.Pos
		if pos >= extent || pos+p.Size <= 0 {
			continue
		}
		item, ok := v.Items[p.Index].(Item)
		if !ok {
			continue
		}
		var r Region
		if axis == marquee.AxisY {
			iw := item.Extent(marquee.AxisX)
			r = root.Sub((w-iw)/2, pos, iw, p.Size)
		} else {
			r = root.Sub(pos, 0, p.Size, item.Extent(marquee.AxisY))
		}
		item.Draw(r, pal)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := marquee.EdgeDistance(x, w)
			if axis == marquee.AxisY {
				d = marquee.EdgeDistance(y, h)
			}
			dst.Cell(x, y, s.canvas.Get(x, y).Fade(pal.PageBg, v.Prims.FadeAlpha(d)))
		}
	}
}
