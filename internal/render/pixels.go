package render

import (
	"image/color"

	"voxel-ca/pkg/automaton"
)

// paletteIndex maps a cell value onto a palette slot. Sentinels and negative
// values use slot 0; values past the end clamp to the last slot.
func paletteIndex(v automaton.State, last int) int {
	idx := int(v)
	if idx < 0 {
		return 0
	}
	if idx > last {
		return last
	}
	return idx
}

func put(buf []byte, base int, col color.RGBA) {
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []automaton.State, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		put(buf, i*4, palette[paletteIndex(c, last)])
	}
}

// fillHexRGBA lays out a w*h hex layer in a (2w+1)*h buffer. Every cell is
// two pixels wide and odd rows shift right by one pixel; the gap left at the
// start or end of each row is transparent.
func fillHexRGBA(buf []byte, w, h int, cells []automaton.State, palette []color.RGBA) {
	stride := 2*w + 1
	clear(buf[:4*stride*h])
	if len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	for y := 0; y < h; y++ {
		shift := y & 1
		for x := 0; x < w; x++ {
			col := palette[paletteIndex(cells[y*w+x], last)]
			px := 2*x + shift
			put(buf, (y*stride+px)*4, col)
			put(buf, (y*stride+px+1)*4, col)
		}
	}
}
