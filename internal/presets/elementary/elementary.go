package elementary

import (
	"voxel-ca/internal/core"
	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 64, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	core.IntFromMap(cfg, "w", &c.Width, core.Positive)
	core.IntFromMap(cfg, "h", &c.Height, core.Positive)
	rule := int(c.Rule)
	core.IntFromMap(cfg, "rule", &rule, func(v int) bool { return v >= 0 && v <= 255 })
	c.Rule = uint8(rule)
	return c
}

// Elementary stacks a one-dimensional Wolfram code along z: layer z holds
// generation z, computed from the row on the layer below.
type Elementary struct {
	cfg Config
}

// New creates an elementary preset.
func New(cfg Config) *Elementary { return &Elementary{cfg: cfg} }

// Name returns the preset identifier.
func (e *Elementary) Name() string { return "elementary" }

// Grid allocates a single-row grid with one layer per generation.
func (e *Elementary) Grid() (automaton.Grid, error) {
	return automaton.NewOrthoGrid(e.cfg.Width, 1, e.cfg.Height)
}

// Wolfram evaluates an elementary rule code against the row below. The
// bottom layer is left alone and cells past the row ends read as zero.
type Wolfram struct {
	Code uint8
}

// Status implements automaton.Rule.
func (w Wolfram) Status(n automaton.Neighborhood, _, _, _ int) automaton.State {
	if n.Lower == automaton.OutOfBounds {
		return automaton.NoChange
	}
	left := bit(n.Below[4])
	center := bit(n.Lower)
	right := bit(n.Below[0])
	idx := (left << 2) | (center << 1) | right
	return automaton.State((w.Code >> idx) & 1)
}

func bit(v automaton.State) uint8 {
	if v == 1 {
		return 1
	}
	return 0
}

// Program lights the center of layer 0 and then fills every layer above.
func (e *Elementary) Program(int64) engine.Program {
	return engine.Program{
		Name: e.Name(),
		Stages: []engine.Stage{
			{Name: "seed", Rule: automaton.NewBuildBox(1, e.cfg.Width/2, 0, 0, 1, 1, 1), Generations: 1},
			{Name: "unfold", Rule: Wolfram{Code: e.cfg.Rule}, Generations: max(e.cfg.Height-1, 0)},
		},
	}
}

// Parameters reports the preset's tunables.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("w", "Width", e.cfg.Width),
			core.IntParam("h", "Generations", e.cfg.Height),
		}},
		{Name: "Rule", Params: []core.Parameter{
			core.IntParam("rule", "Wolfram code", int(e.cfg.Rule)),
		}},
	}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Preset {
		return New(FromMap(cfg))
	})
}
