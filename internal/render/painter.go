//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"voxel-ca/pkg/automaton"
)

// LayerPainter uploads one grid layer into an RGBA image and draws it.
type LayerPainter struct {
	w, h int
	hex  bool
	img  *ebiten.Image
	buf  []byte
}

// NewLayerPainter allocates a painter for w*h layers. Hex layers are drawn
// two pixels per cell with odd rows offset.
func NewLayerPainter(w, h int, hex bool) *LayerPainter {
	iw, _ := imageSize(w, h, hex)
	lp := &LayerPainter{w: w, h: h, hex: hex, buf: make([]byte, 4*iw*h)}
	lp.img = ebiten.NewImage(iw, h)
	return lp
}

func imageSize(w, h int, hex bool) (int, int) {
	if hex {
		return 2*w + 1, h
	}
	return w, h
}

// Blit colors cells with palette and draws them scaled onto dst.
func (lp *LayerPainter) Blit(dst *ebiten.Image, cells []automaton.State, palette []color.RGBA, scale int) {
	if len(cells) != lp.w*lp.h {
		return
	}
	if lp.hex {
		fillHexRGBA(lp.buf, lp.w, lp.h, cells, palette)
	} else {
		fillPaletteRGBA(lp.buf, cells, palette)
	}
	lp.img.WritePixels(lp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(lp.img, op)
}

// BlitMask draws the non-empty cells as a flat tint.
func (lp *LayerPainter) BlitMask(dst *ebiten.Image, cells []automaton.State, tint color.RGBA, scale int) {
	lp.Blit(dst, cells, []color.RGBA{{}, tint}, scale)
}

// Size returns the dimensions of the underlying image.
func (lp *LayerPainter) Size() (int, int) { return imageSize(lp.w, lp.h, lp.hex) }
