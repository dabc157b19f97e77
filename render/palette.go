package render

import "github.com/lucasb-eyer/go-colorful"

// Palette holds the page colors
type Palette struct {
	PageBg colorful.Color
	Text   colorful.Color
	Muted  colorful.Color
	Accent colorful.Color
	Border colorful.Color
	CardBg colorful.Color

	// Code token colors
	Keyword colorful.Color
	String  colorful.Color
	Comment colorful.Color
	Tag     colorful.Color
}

// StonePalette is a light stone theme
var StonePalette = Palette{
	PageBg:  colorful.MustParseHex("#fafaf9"),
	Text:    colorful.MustParseHex("#1c1917"),
	Muted:   colorful.MustParseHex("#57534e"),
	Accent:  colorful.MustParseHex("#0e7490"),
	Border:  colorful.MustParseHex("#d6d3d1"),
	CardBg:  colorful.MustParseHex("#ffffff"),
	Keyword: colorful.MustParseHex("#7c3aed"),
	String:  colorful.MustParseHex("#15803d"),
	Comment: colorful.MustParseHex("#a8a29e"),
	Tag:     colorful.MustParseHex("#b91c1c"),
}

// NightPalette is a dark theme
var NightPalette = Palette{
	PageBg:  colorful.MustParseHex("#1a1b26"),
	Text:    colorful.MustParseHex("#c0caf5"),
	Muted:   colorful.MustParseHex("#787c99"),
	Accent:  colorful.MustParseHex("#7dcfff"),
	Border:  colorful.MustParseHex("#3b4261"),
	CardBg:  colorful.MustParseHex("#24283b"),
	Keyword: colorful.MustParseHex("#bb9af7"),
	String:  colorful.MustParseHex("#9ece6a"),
	Comment: colorful.MustParseHex("#565f89"),
	Tag:     colorful.MustParseHex("#f7768e"),
}

// PaletteByName resolves a theme name, ok is false for unknown names
func PaletteByName(name string) (Palette, bool) {
	switch name {
	case "stone", "light":
		return StonePalette, true
	case "night", "dark":
		return NightPalette, true
	}
	return Palette{}, false
}
