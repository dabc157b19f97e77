package render

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/marquee/marquee"
)

// Item is a marquee item that can draw itself into a region of its own extent
type Item interface {
	marquee.Item
	Draw(r Region, pal Palette)
}

const (
	// DefaultCardWidth approximates a 20rem card in cells
	DefaultCardWidth = 40
	minCardWidth     = 12
)

// TestimonialCard is a bordered quote card with avatar initials, name, and title
type TestimonialCard struct {
	Name  string
	Title string
	Body  string

	width int
	lines []string
}

// NewTestimonialCard wraps the body once for the given width
func NewTestimonialCard(name, title, body string, width int) *TestimonialCard {
	if width < minCardWidth {
		width = minCardWidth
	}
	return &TestimonialCard{
		Name:  name,
		Title: title,
		Body:  body,
		width: width,
		lines: Wrap(body, width-4),
	}
}

// Extent implements marquee.Item
func (c *TestimonialCard) Extent(axis marquee.Axis) int {
	if axis == marquee.AxisY {
		// border, name, title, spacer, body, border
		return 2 + 3 + len(c.lines)
	}
	return c.width
}

// Initials returns up to two uppercase initials of the name
func (c *TestimonialCard) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(c.Name) {
		for _, ch := range word {
			b.WriteRune(unicode.ToUpper(ch))
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// Draw implements Item
func (c *TestimonialCard) Draw(r Region, pal Palette) {
	inner := r.Box(LineRounded, pal.Border, pal.CardBg)
	body := inner.Sub(1, 0, inner.W-2, inner.H)

	avatar := "(" + c.Initials() + ")"
	aw := body.Text(0, 0, avatar, pal.Accent, pal.CardBg, tcell.AttrBold)
	body.TextFit(aw+1, 0, c.Name, pal.Text, pal.CardBg, tcell.AttrBold)
	body.TextFit(aw+1, 1, c.Title, pal.Muted, pal.CardBg, tcell.AttrNone)

	for i, line := range c.lines {
		body.Text(0, 3+i, line, pal.Muted, pal.CardBg, tcell.AttrNone)
	}
}

// LogoBadge is a boxed brand name standing in for a logo image
type LogoBadge struct {
	Name  string
	Glyph string
}

// NewLogoBadge creates a badge, glyph may be empty
func NewLogoBadge(name, glyph string) *LogoBadge {
	return &LogoBadge{Name: name, Glyph: glyph}
}

func (l *LogoBadge) label() string {
	if l.Glyph == "" {
		return l.Name
	}
	return l.Glyph + " " + l.Name
}

// Extent implements marquee.Item
func (l *LogoBadge) Extent(axis marquee.Axis) int {
	if axis == marquee.AxisY {
		return 3
	}
	return runewidth.StringWidth(l.label()) + 4
}

// Draw implements Item
func (l *LogoBadge) Draw(r Region, pal Palette) {
	inner := r.Box(LineSingle, pal.Border, pal.CardBg)
	x := 1
	if l.Glyph != "" {
		x += inner.Text(x, 0, l.Glyph+" ", pal.Accent, pal.CardBg, tcell.AttrBold)
	}
	inner.Text(x, 0, l.Name, pal.Text, pal.CardBg, tcell.AttrBold)
}
