package app

import (
	"fmt"

	"voxel-ca/internal/core"
	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

// Session steps a preset's program one generation at a time and tracks the
// layer being viewed.
type Session struct {
	preset core.Preset
	grid   automaton.Grid
	cursor *engine.Cursor
	layer  int
	seed   int64
}

// NewSession allocates the preset's grid and positions it before the first
// generation.
func NewSession(p core.Preset, seed int64) (*Session, error) {
	s := &Session{preset: p}
	if err := s.Reset(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rebuilds the grid and program from seed. The viewed layer is kept
// when it still exists.
func (s *Session) Reset(seed int64) error {
	g, err := s.preset.Grid()
	if err != nil {
		return fmt.Errorf("%s: %w", s.preset.Name(), err)
	}
	c, err := engine.NewCursor(s.preset.Program(seed))
	if err != nil {
		return fmt.Errorf("%s: %w", s.preset.Name(), err)
	}
	s.grid, s.cursor, s.seed = g, c, seed
	s.layer = min(s.layer, max(g.Size().Z-1, 0))
	return nil
}

// Step applies the next generation. It reports false once the program has
// finished.
func (s *Session) Step() bool {
	st, ok := s.cursor.Next()
	if !ok {
		return false
	}
	s.grid.Apply(st.Rule)
	return true
}

// MoveLayer shifts the viewed layer by delta, clamped to the grid.
func (s *Session) MoveLayer(delta int) {
	s.layer = min(max(s.layer+delta, 0), max(s.grid.Size().Z-1, 0))
}

// Layer returns the viewed layer index.
func (s *Session) Layer() int { return s.layer }

// Cells returns a copy of the viewed layer.
func (s *Session) Cells() []automaton.State {
	l, err := core.LayerOf(s.grid, s.layer)
	if err != nil {
		return nil
	}
	return l.Cells()
}

// Below returns a copy of the layer under the viewed one, or nil on layer 0.
func (s *Session) Below() []automaton.State {
	if s.layer == 0 {
		return nil
	}
	l, err := core.LayerOf(s.grid, s.layer-1)
	if err != nil {
		return nil
	}
	return l.Cells()
}

// Grid exposes the live grid.
func (s *Session) Grid() automaton.Grid { return s.grid }

// Preset returns the preset being run.
func (s *Session) Preset() core.Preset { return s.preset }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.seed }

// Generation is the number of generations applied since the last reset.
func (s *Session) Generation() int { return s.cursor.Generation() }

// Stage names the stage of the next generation, or "done".
func (s *Session) Stage() string {
	if s.cursor.Done() {
		return "done"
	}
	return s.cursor.Stage()
}
