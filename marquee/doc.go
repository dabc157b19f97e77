// Package marquee implements a seamless-loop scrolling engine for terminal content.
//
// A Marquee owns the state of one mounted instance. Each frame the host scheduler invokes the
// instance, which runs a pending layout pass if needed and advances its Driver. Layout is split
// into three pure steps:
//
//	unit := Measure(items, gap, axis)     // repeat unit, Unmeasured for empty content
//	n := Copies(unit, viewport)           // max(2, ceil(2*viewport/unit))
//	placements := Layout(nil, items, gap, axis, n)
//
// Bind maps a Config onto render Primitives (axis, sign, gap, fade ramp, reserved bands). The
// Controller folds hover, visibility, off-screen and freeze holds into driver pause/resume.
//
// Offsets are always kept in [0, unit). Content is drawn shifted toward the axis origin by the
// offset, so left/up motion grows the offset and right/down motion shrinks it.
package marquee
