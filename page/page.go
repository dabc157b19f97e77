// Package page lays out the demo document as a vertically scrolling terminal page
package page

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/content"
	"github.com/lixenwraith/marquee/engine"
	"github.com/lixenwraith/marquee/event"
	"github.com/lixenwraith/marquee/marquee"
	"github.com/lixenwraith/marquee/render"
)

const (
	maxColumnWidth   = 100
	columnPadding    = 2
	cardWidth        = render.DefaultCardWidth
	defaultTrackRows = 20
)

type blockKind uint8

const (
	blockTitle blockKind = iota
	blockSubtitle
	blockHeading
	blockCode
	blockRule
	blockSpacer
	blockTrack
)

type block struct {
	kind    blockKind
	text    string
	code    *render.CodeBlock
	section *Section

	y, h int // Page coordinates, set by Layout
}

// Section is one mounted demo marquee
type Section struct {
	Title   string
	Marquee *marquee.Marquee

	// Vertical track length in rows, horizontal tracks use the column width
	trackRows int
}

// Page is the demo page state
type Page struct {
	pal    render.Palette
	blocks []block

	sections []*Section
	focus    int

	strip *render.Strip

	screenW, screenH int
	colX, colW       int
	contentH         int
	scroll           int
}

// New builds the page blocks and one marquee per document section
func New(doc *content.Document, pal render.Palette) (*Page, error) {
	p := &Page{pal: pal, strip: render.NewStrip()}

	testimonials := make([]marquee.Item, 0, len(doc.Testimonials))
	for _, t := range doc.Testimonials {
		testimonials = append(testimonials, render.NewTestimonialCard(t.Name, t.Title, t.Content, cardWidth))
	}
	logos := make([]marquee.Item, 0, len(doc.Logos))
	for _, l := range doc.Logos {
		logos = append(logos, render.NewLogoBadge(l.Name, l.Glyph))
	}

	p.add(block{kind: blockTitle, text: doc.Title, h: 1})
	p.add(block{kind: blockSubtitle, text: doc.Subtitle, h: 1})
	p.add(block{kind: blockSpacer, h: 1})
	if doc.Install != "" {
		p.addCode("Installation", doc.Install)
	}
	if doc.Import != "" {
		p.addCode("Import", doc.Import)
	}

	for i, s := range doc.Sections {
		cfg, err := s.Marquee.Config()
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		items := logos
		if s.Items == content.SourceTestimonials {
			items = testimonials
		}
		sec := &Section{
			Title:     s.Title,
			Marquee:   marquee.New(cfg, items),
			trackRows: s.Marquee.Height,
		}
		if sec.trackRows <= 0 {
			sec.trackRows = defaultTrackRows
		}
		p.sections = append(p.sections, sec)

		p.add(block{kind: blockRule, h: 1})
		p.add(block{kind: blockHeading, text: s.Title, section: sec, h: 1})
		p.add(block{kind: blockTrack, section: sec})
		p.add(block{kind: blockSpacer, h: 1})
		p.addCode("Code", s.Code)
	}
	return p, nil
}

func (p *Page) add(b block) {
	p.blocks = append(p.blocks, b)
}

func (p *Page) addCode(heading, src string) {
	code := render.NewCodeBlock(src)
	p.add(block{kind: blockHeading, text: heading, h: 1})
	p.add(block{kind: blockCode, code: code, h: code.Height()})
	p.add(block{kind: blockSpacer, h: 1})
}

// Sections returns the demo sections in page order
func (p *Page) Sections() []*Section {
	return p.sections
}

// Focused returns the focused section, nil for a page without sections
func (p *Page) Focused() *Section {
	if len(p.sections) == 0 {
		return nil
	}
	return p.sections[p.focus]
}

// Mount attaches every section marquee to the host loop
func (p *Page) Mount(frames *engine.FrameScheduler, input *event.Dispatcher) {
	for _, s := range p.sections {
		s.Marquee.Mount(frames, input)
	}
}

// Unmount detaches every section marquee
func (p *Page) Unmount() {
	for _, s := range p.sections {
		s.Marquee.Unmount()
	}
}

// OnWrap installs fn as the wrap callback of every section
func (p *Page) OnWrap(fn func(wraps int)) {
	for _, s := range p.sections {
		s.Marquee.OnWrap(fn)
	}
}

// Layout positions blocks for a screen size and updates marquee bounds and visibility
// The last screen row is reserved for the status bar
func (p *Page) Layout(screenW, screenH int, now time.Time) {
	p.screenW, p.screenH = screenW, screenH

	p.colW = min(screenW-2*columnPadding, maxColumnWidth)
	if p.colW < 1 {
		p.colW = max(screenW, 1)
	}
	p.colX = (screenW - p.colW) / 2

	y := 0
	for i := range p.blocks {
		b := &p.blocks[i]
		if b.kind == blockTrack {
			b.h = p.trackHeight(b.section)
		}
		b.y = y
		y += b.h
	}
	p.contentH = y
	p.clampScroll()
	p.place(now)
}

func (p *Page) trackHeight(s *Section) int {
	m := s.Marquee
	prims := m.Primitives()
	if prims.Axis == marquee.AxisY {
		return prims.ContainerExtent(s.trackRows)
	}
	return max(marquee.CrossExtent(m.Items(), prims.Axis), 1)
}

// place updates marquee screen bounds and on-screen holds for the current scroll
func (p *Page) place(now time.Time) {
	view := p.viewRows()
	for _, b := range p.blocks {
		if b.kind != blockTrack {
			continue
		}
		m := b.section.Marquee
		prims := m.Primitives()

		// Reserved fade bands extend into the column padding
		bounds := marquee.Rect{
			X: p.colX - prims.Reserve,
			Y: b.y - p.scroll,
			W: prims.ContainerExtent(p.colW),
			H: b.h,
		}
		if prims.Axis == marquee.AxisY {
			w := max(marquee.CrossExtent(m.Items(), prims.Axis), 1)
			bounds.X = p.colX + (p.colW-w)/2
			bounds.W = w
		}
		m.Resize(bounds)
		m.SetOnscreen(bounds.Y+bounds.H > 0 && bounds.Y < view, now)
	}
}

func (p *Page) viewRows() int {
	return max(p.screenH-1, 0)
}

func (p *Page) clampScroll() {
	maxScroll := max(p.contentH-p.viewRows(), 0)
	p.scroll = min(max(p.scroll, 0), maxScroll)
}

// Scroll returns the first visible page row
func (p *Page) Scroll() int {
	return p.scroll
}

// ContentHeight returns the laid out page height in rows
func (p *Page) ContentHeight() int {
	return p.contentH
}

// ScrollBy scrolls the page by delta rows
func (p *Page) ScrollBy(delta int, now time.Time) {
	prev := p.scroll
	p.scroll += delta
	p.clampScroll()
	if p.scroll != prev {
		p.place(now)
	}
}

// PageRows is the scroll step for page up/down
func (p *Page) PageRows() int {
	return max(p.viewRows()/2, 1)
}

// FocusNext moves section focus by delta and scrolls the section heading into view
func (p *Page) FocusNext(delta int, now time.Time) {
	n := len(p.sections)
	if n == 0 {
		return
	}
	p.focus = ((p.focus+delta)%n + n) % n
	for _, b := range p.blocks {
		if b.kind == blockHeading && b.section == p.sections[p.focus] {
			if b.y < p.scroll || b.y >= p.scroll+p.viewRows() {
				p.ScrollBy(b.y-p.scroll, now)
			}
			return
		}
	}
}

// ToggleReverse rebinds the focused marquee with reverse flipped
func (p *Page) ToggleReverse(now time.Time) {
	s := p.Focused()
	if s == nil {
		return
	}
	cfg := s.Marquee.Config()
	cfg.Reverse = !cfg.Reverse
	s.Marquee.Rebind(cfg)
	p.Layout(p.screenW, p.screenH, now)
}

// Draw renders the visible part of the page and the status bar
func (p *Page) Draw(root render.Region, frozen bool) {
	root.Fill(p.pal.PageBg)
	view := root.Sub(0, 0, root.W, p.viewRows())
	col := view.Sub(p.colX, -p.scroll, p.colW, p.contentH)

	for _, b := range p.blocks {
		if b.y+b.h <= p.scroll || b.y >= p.scroll+p.viewRows() {
			continue
		}
		r := col.Sub(0, b.y, p.colW, b.h)
		switch b.kind {
		case blockTitle:
			r.Text(0, 0, b.text, p.pal.Text, p.pal.PageBg, tcell.AttrBold)
		case blockSubtitle:
			r.TextFit(0, 0, b.text, p.pal.Muted, p.pal.PageBg, tcell.AttrNone)
		case blockHeading:
			attrs := tcell.AttrBold
			fg := p.pal.Text
			prefix := ""
			if b.section != nil {
				prefix = "  "
				if b.section == p.Focused() {
					prefix = "▸ "
					fg = p.pal.Accent
				}
			}
			r.TextFit(0, 0, prefix+b.text, fg, p.pal.PageBg, attrs)
		case blockCode:
			b.code.Draw(r, p.pal)
		case blockRule:
			r.HLine(0, '─', p.pal.Border, p.pal.PageBg)
		case blockTrack:
			bounds := b.section.Marquee.Bounds()
			p.strip.Draw(view.Sub(bounds.X, bounds.Y, bounds.W, bounds.H), b.section.Marquee.View(), p.pal)
		}
	}

	p.drawStatus(root.Sub(0, root.H-1, root.W, 1), frozen)
}

func (p *Page) drawStatus(r render.Region, frozen bool) {
	r.Fill(p.pal.Border)
	help := "q quit  ↑↓ scroll  tab focus  r reverse  space freeze"
	x := r.Text(1, 0, help, p.pal.Text, p.pal.Border, tcell.AttrNone)

	s := p.Focused()
	if s == nil {
		return
	}
	v := s.Marquee.View()
	status := fmt.Sprintf("%s: %s offset %.1f/%d copies %d", s.Title, v.State, v.Offset, v.Unit, v.Copies)
	if frozen {
		status += " [frozen]"
	}
	r.TextFit(x+3, 0, status, p.pal.Accent, p.pal.Border, tcell.AttrBold)
}
