//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"voxel-ca/internal/render"
	"voxel-ca/internal/ui"
	"voxel-ca/pkg/automaton"
)

const panelWidth = 220

// Game adapts a Session to the ebiten.Game interface, showing one layer at a
// time.
type Game struct {
	session *Session
	painter *render.LayerPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided session.
func New(s *Session, scale int, logger *slog.Logger) *Game {
	size := s.Grid().Size()
	hex := s.Grid().Topology() == automaton.Hexagonal
	return &Game{
		session: s,
		painter: render.NewLayerPainter(size.X, size.Y, hex),
		overlay: ui.NewOverlay(size.X, size.Y, hex, scale),
		hud:     ui.NewHUD(panelWidth),
		logger:  logger,
		scale:   scale,
		paused:  true,
	}
}

// Reset rebuilds the session with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.session.Reset(seed); err != nil {
		g.logger.Error("reset failed", "seed", seed, "err", err)
		return
	}
	g.tickOnce = false
	g.logger.Info("reset", "preset", g.session.Preset().Name(), "seed", seed)
}

// Update handles per-frame logic and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.session.MoveLayer(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.session.MoveLayer(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		if !g.session.Step() {
			g.paused = true
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current layer, the overlay and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Cells(), render.DefaultPalette, g.scale)
	g.overlay.Draw(screen, g.session.Below())

	w, h := g.viewSize()
	g.hud.Draw(screen, w, h, g.status())
}

func (g *Game) status() ui.Status {
	grid := g.session.Grid()
	size := grid.Size()
	s := ui.Status{
		Preset:     g.session.Preset().Name(),
		Stage:      g.session.Stage(),
		Generation: g.session.Generation(),
		Layer:      g.session.Layer(),
		Layers:     size.Z,
		Paused:     g.paused,
		Ghost:      g.overlay.Visible(),
		Params:     g.session.Preset().Parameters(),
	}
	mx, my := ebiten.CursorPosition()
	if x, y, ok := ui.PickCell(mx, my, g.scale, size.X, size.Y, grid.Topology() == automaton.Hexagonal); ok {
		if v, err := grid.Value(x, y, g.session.Layer()); err == nil {
			s.Hover = &ui.Probe{X: x, Y: y, Value: v}
		}
	}
	return s
}

func (g *Game) viewSize() (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	return w + g.hud.Width(), h
}
