package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"voxel-ca/internal/core"
	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FloorPlan renders layers as text, one glyph per cell. Hex layers indent
// odd rows by one column. Styled output colors glyphs with the default
// palette.
type FloorPlan struct {
	Styled bool
}

// Layer renders a single layer, rows top to bottom.
func (p FloorPlan) Layer(layer *core.Layer, hex bool) string {
	var b strings.Builder
	for y := 0; y < layer.H; y++ {
		if hex && y&1 == 1 {
			b.WriteByte(' ')
		}
		for x := 0; x < layer.W; x++ {
			v := layer.At(x, y)
			b.WriteString(p.glyph(v))
			if hex && x < layer.W-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p FloorPlan) glyph(v automaton.State) string {
	g := string(Glyph(int(v)))
	if !p.Styled {
		return g
	}
	return glyphStyles[paletteIndex(v, len(glyphStyles)-1)].Render(g)
}

func (p FloorPlan) header(format string, args ...any) string {
	s := fmt.Sprintf(format, args...)
	if p.Styled {
		return headerStyle.Render(s)
	}
	return s
}

// Write prints every layer of g from the top floor down.
func (p FloorPlan) Write(w io.Writer, g automaton.Grid) error {
	size := g.Size()
	hex := g.Topology() == automaton.Hexagonal
	for z := size.Z - 1; z >= 0; z-- {
		layer, err := core.LayerOf(g, z)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", p.header("z=%d", z), p.Layer(layer, hex)); err != nil {
			return err
		}
	}
	return nil
}

// Legend lists each census entry with its glyph.
func (p FloorPlan) Legend(census []engine.CensusEntry) string {
	var b strings.Builder
	for _, e := range census {
		count := fmt.Sprintf("%d cells", e.Cells)
		if p.Styled {
			count = mutedStyle.Render(count)
		}
		fmt.Fprintf(&b, "%s %4d  %s\n", p.glyph(e.State), int(e.State), count)
	}
	return b.String()
}
