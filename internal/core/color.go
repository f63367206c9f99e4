package core

import "fmt"

// Color is a cell foreground or background color.
// Named colors map to the 16 ANSI colors; RGB colors carry a 24-bit value.
type Color uint32

// Predefined colors. ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorDarkGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

const rgbFlag Color = 1 << 24

// RGB builds a true-color value.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsRGB reports whether the color carries a 24-bit value.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// RGB returns the components of a true-color value.
// Named colors return zeros.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ANSI returns the 256-color palette index for a named color, or -1 for
// ColorDefault and RGB colors.
func (c Color) ANSI() int {
	switch c {
	case ColorBlack:
		return 0
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
	case ColorDarkGray:
		return 8
	case ColorBrightRed:
		return 9
	case ColorBrightGreen:
		return 10
	case ColorBrightYellow:
		return 11
	case ColorBrightBlue:
		return 12
	case ColorBrightMagenta:
		return 13
	case ColorBrightCyan:
		return 14
	case ColorBrightWhite:
		return 15
	case ColorGray:
		return 245
	default:
		return -1
	}
}

// Hex returns "#rrggbb" for RGB colors, the palette index for named colors,
// and "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsRGB() {
		r, g, b := c.RGB()
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	if idx := c.ANSI(); idx >= 0 {
		return fmt.Sprintf("%d", idx)
	}
	return ""
}

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrBlink
	AttrReverse
)

// Style is the visual descriptor of a single cell.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Foreground returns a copy with the foreground set.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background set.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a copy with the bold attribute.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a copy with the dim attribute.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Blink returns a copy with the blink attribute.
func (s Style) Blink() Style {
	s.Attrs |= AttrBlink
	return s
}

// Reverse returns a copy with the reverse-video attribute.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Has reports whether all attributes in a are set.
func (s Style) Has(a Attr) bool {
	return s.Attrs&a == a
}

// Fg is shorthand for a style with only a foreground color.
func Fg(c Color) Style {
	return Style{Fg: c}
}
