package marquee

// MinCopies is the floor for copy count, one visible pass plus one entering pass
const MinCopies = 2

// Copies returns how many consecutive passes of the content are required so that the strip
// extent is at least twice the viewport: max(2, ceil(2*viewport/unit))
// Returns 0 for an unmeasured unit
func Copies(unit Extent, viewport int) int {
	if !unit.Valid() {
		return 0
	}
	if viewport < 0 {
		viewport = 0
	}
	u := int(unit)
	n := (2*viewport + u - 1) / u
	if n < MinCopies {
		n = MinCopies
	}
	return n
}

// Placement is the strip position of one item copy
type Placement struct {
	Index int // Item index in the content sequence
	Copy  int // Pass number, 0-based
	Pos   int // Leading edge along the axis, relative to strip start
	Size  int // Extent along the axis
}

// Layout positions every item of every copy along the strip
// dst is reused when it has capacity
func Layout(dst []Placement, items []Item, gap int, axis Axis, copies int) []Placement {
	dst = dst[:0]
	if gap < 0 {
		gap = 0
	}
	pos := 0
	for c := 0; c < copies; c++ {
		for i, it := range items {
			if it == nil {
				continue
			}
			size := it.Extent(axis)
			if size < 0 {
				size = 0
			}
			dst = append(dst, Placement{Index: i, Copy: c, Pos: pos, Size: size})
			pos += size + gap
		}
	}
	return dst
}

// StripExtent is the total extent covered by copies passes of unit
func StripExtent(unit Extent, copies int) int {
	return int(unit) * copies
}
