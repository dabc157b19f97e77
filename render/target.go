package render

import "github.com/gdamore/tcell/v2"

// Target receives drawn cells, coordinates are absolute to the target
type Target interface {
	Set(x, y int, c Cell)
	Size() (width, height int)
}

// Surface is the subset of tcell.Screen used for output
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// ScreenTarget writes cells straight to a Surface
type ScreenTarget struct {
	S Surface
}

// Set implements Target
func (t ScreenTarget) Set(x, y int, c Cell) {
	if c.Cont {
		return
	}
	r := c.Rune
	if r == 0 {
		r = ' '
	}
	t.S.SetContent(x, y, r, nil, c.Style())
}

// Size implements Target
func (t ScreenTarget) Size() (int, int) {
	return t.S.Size()
}

// Canvas is an offscreen cell buffer used for composition before fades
type Canvas struct {
	cells []Cell
	w, h  int
}

// NewCanvas allocates a canvas
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity is insufficient
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	if cap(c.cells) < n {
		c.cells = make([]Cell, n)
	}
	c.cells = c.cells[:n]
	c.w, c.h = w, h
}

// Set implements Target
func (c *Canvas) Set(x, y int, cell Cell) {
	if uint(x) >= uint(c.w) || uint(y) >= uint(c.h) {
		return
	}
	c.cells[y*c.w+x] = cell
}

// Get returns the cell at (x, y), zero cell when out of bounds
func (c *Canvas) Get(x, y int) Cell {
	if uint(x) >= uint(c.w) || uint(y) >= uint(c.h) {
		return Cell{}
	}
	return c.cells[y*c.w+x]
}

// Size implements Target
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// Clear fills every cell with the given cell
func (c *Canvas) Clear(fill Cell) {
	for i := range c.cells {
		c.cells[i] = fill
	}
}
