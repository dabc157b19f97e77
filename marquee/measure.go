package marquee

// Item is an opaque renderable owned by the caller
// The engine only reads its extent, never its content
type Item interface {
	Extent(axis Axis) int
}

// Extent is a length in cells along the scroll axis
type Extent int

// Unmeasured is the sentinel returned before a valid layout pass
const Unmeasured Extent = 0

// Valid reports whether the extent can drive animation
func (e Extent) Valid() bool {
	return e > 0
}

// Measure returns the repeat unit of one pass through items along axis
// Each item contributes its extent plus one trailing gap so that consecutive copies are evenly
// spaced. Returns Unmeasured for empty or zero-extent content
func Measure(items []Item, gap int, axis Axis) Extent {
	if gap < 0 {
		gap = 0
	}
	content, n := 0, 0
	for _, it := range items {
		if it == nil {
			continue
		}
		n++
		if e := it.Extent(axis); e > 0 {
			content += e
		}
	}
	if content == 0 {
		return Unmeasured
	}
	return Extent(content + gap*n)
}

// CrossExtent returns the largest item extent across the scroll axis
func CrossExtent(items []Item, axis Axis) int {
	cross := AxisY
	if axis == AxisY {
		cross = AxisX
	}
	maxExtent := 0
	for _, it := range items {
		if it == nil {
			continue
		}
		if e := it.Extent(cross); e > maxExtent {
			maxExtent = e
		}
	}
	return maxExtent
}
