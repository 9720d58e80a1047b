//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"voxel-ca/internal/render"
	"voxel-ca/pkg/automaton"
)

// Overlay tints the layer below the viewed one so vertical structure stays
// visible while paging through floors.
type Overlay struct {
	painter *render.LayerPainter
	scale   int
	show    bool
	tint    color.RGBA
}

// NewOverlay constructs an overlay for w*h layers.
func NewOverlay(w, h int, hex bool, scale int) *Overlay {
	return &Overlay{
		painter: render.NewLayerPainter(w, h, hex),
		scale:   scale,
		tint:    color.RGBA{R: 255, G: 120, B: 40, A: 70},
	}
}

// Update toggles the overlay with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o != nil && o.show }

// Draw paints below on top of screen when enabled.
func (o *Overlay) Draw(screen *ebiten.Image, below []automaton.State) {
	if !o.Visible() || below == nil {
		return
	}
	o.painter.BlitMask(screen, below, o.tint, o.scale)
}
