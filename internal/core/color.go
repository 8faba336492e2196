package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)

// Palette assigns a color to each glyph a game draws.
// Glyphs without an entry use ColorDefault.
type Palette map[rune]Color

// Lookup returns the color for r.
func (p Palette) Lookup(r rune) Color {
	if c, ok := p[r]; ok {
		return c
	}
	return ColorDefault
}

// ANSI returns the 256-color palette index for c, or -1 for the terminal's
// default foreground.
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorBrightRed:
		return 9
	case ColorBrightGreen:
		return 10
	case ColorBrightYellow:
		return 11
	case ColorGray:
		return 245
	default:
		return -1
	}
}
