package render

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// DefaultPalette colors states 0 through 9. Higher states share the last
// entry.
var DefaultPalette = []color.RGBA{
	{R: 12, G: 12, B: 16, A: 255},
	{R: 200, G: 200, B: 205, A: 255},
	{R: 120, G: 132, B: 150, A: 255},
	{R: 80, G: 170, B: 230, A: 255},
	{R: 190, G: 70, B: 60, A: 255},
	{R: 90, G: 180, B: 90, A: 255},
	{R: 230, G: 190, B: 70, A: 255},
	{R: 170, G: 110, B: 200, A: 255},
	{R: 60, G: 200, B: 190, A: 255},
	{R: 240, G: 240, B: 240, A: 255},
}

// glyphs are the characters used for states 0 through 9 in floor plans.
const glyphs = ".#=o^*+%@&"

// Glyph returns the floor-plan character for v. Values past the table show
// as '?', sentinels as 'x'.
func Glyph(v int) byte {
	switch {
	case v < 0:
		return 'x'
	case v >= len(glyphs):
		return '?'
	default:
		return glyphs[v]
	}
}

func hexColor(c color.RGBA) lipgloss.Color {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return lipgloss.Color(string(b))
}

// glyphStyles holds one foreground style per palette entry.
var glyphStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(DefaultPalette))
	for i, c := range DefaultPalette {
		styles[i] = lipgloss.NewStyle().Foreground(hexColor(c))
	}
	// Empty cells stay dim on dark terminals.
	styles[0] = lipgloss.NewStyle().Foreground(lipgloss.Color("#3a3f4b"))
	return styles
}()

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50aae6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#78849a"))
)
