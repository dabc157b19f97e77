package marquee

import "time"

// block is a fixed-size test item
type block struct {
	w, h int
}

func (b block) Extent(axis Axis) int {
	if axis == AxisY {
		return b.h
	}
	return b.w
}

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return epoch.Add(d)
}

// approx compares offsets produced by float accumulation
func approx(a, b float64) bool {
	const eps = 1e-6
	d := a - b
	return d < eps && d > -eps
}
