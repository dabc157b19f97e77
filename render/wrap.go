package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Wrap breaks text into lines of at most width cells at Unicode line-break opportunities
// Mandatory breaks (newlines) are honored, words wider than width are split by cell. A grapheme
// wider than width is placed alone on its line
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var (
		lines []string
		line  strings.Builder
		lineW int
		state = -1
	)
	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " "))
		line.Reset()
		lineW = 0
	}

	rest := text
	for len(rest) > 0 {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		seg = strings.TrimRight(seg, "\r\n")
		trimmed := strings.TrimRight(seg, " ")
		segW := runewidth.StringWidth(trimmed)

		if lineW > 0 && lineW+segW > width {
			flush()
		}
		for segW > width {
			head := runewidth.Truncate(trimmed, width, "")
			if head == "" {
				// A single grapheme wider than the line gets a line of its own
				head, _, _, _ = uniseg.FirstGraphemeClusterInString(trimmed, -1)
			}
			line.WriteString(head)
			flush()
			trimmed = trimmed[len(head):]
			segW = runewidth.StringWidth(trimmed)
			seg = trimmed
		}

		line.WriteString(seg)
		lineW += runewidth.StringWidth(seg)
		if mustBreak && len(rest) > 0 {
			flush()
		}
	}
	if line.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
