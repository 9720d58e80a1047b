package brain

import (
	"voxel-ca/internal/core"
	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

const (
	stateDead  automaton.State = 0
	stateOn    automaton.State = 1
	stateDying automaton.State = 2
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width       int
	Height      int
	Depth       int
	Density     int
	Generations int
	Hex         bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 96, Depth: 1, Density: 12, Generations: 64}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	core.IntFromMap(cfg, "w", &c.Width, core.Positive)
	core.IntFromMap(cfg, "h", &c.Height, core.Positive)
	core.IntFromMap(cfg, "d", &c.Depth, core.Positive)
	core.IntFromMap(cfg, "density", &c.Density, func(v int) bool { return v >= 0 && v <= 100 })
	core.IntFromMap(cfg, "generations", &c.Generations, core.NonNegative)
	core.BoolFromMap(cfg, "hex", &c.Hex)
	return c
}

// Brain implements Brian's Brain on every layer independently.
type Brain struct {
	cfg Config
}

// New creates a Brain preset.
func New(cfg Config) *Brain { return &Brain{cfg: cfg} }

// Name identifies the preset.
func (b *Brain) Name() string { return "briansbrain" }

// Grid allocates an ortho or hex grid depending on the configuration.
func (b *Brain) Grid() (automaton.Grid, error) {
	t := automaton.Orthogonal
	if b.cfg.Hex {
		t = automaton.Hexagonal
	}
	return automaton.NewGrid(t, b.cfg.Width, b.cfg.Height, b.cfg.Depth)
}

// Rule advances firing cells to dying, dying cells to dead, and fires dead
// cells with exactly two firing neighbors on their layer.
func Rule() automaton.Rule {
	return automaton.NewOr(
		automaton.NewReplace(stateOn, stateDying),
		automaton.NewReplace(stateDying, stateDead),
		automaton.NewAnd(
			automaton.NewSelf(stateDead),
			automaton.NewCount([]automaton.State{stateOn}, stateOn, 2, 2),
		),
	)
}

// Program fires a random share of cells and then runs the brain.
func (b *Brain) Program(seed int64) engine.Program {
	return engine.Program{
		Name: b.Name(),
		Stages: []engine.Stage{
			{Name: "seed", Rule: automaton.NewSeededRandom(b.cfg.Density, automaton.NewConst(stateOn), seed), Generations: 1},
			{Name: "fire", Rule: Rule(), Generations: b.cfg.Generations},
		},
	}
}

// Parameters reports the preset's tunables.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("w", "Width", b.cfg.Width),
			core.IntParam("h", "Height", b.cfg.Height),
			core.IntParam("d", "Layers", b.cfg.Depth),
			core.BoolParam("hex", "Hexagonal", b.cfg.Hex),
		}},
		{Name: "Run", Params: []core.Parameter{
			core.IntParam("density", "Initial density %", b.cfg.Density),
			core.IntParam("generations", "Generations", b.cfg.Generations),
		}},
	}}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Preset {
		return New(FromMap(cfg))
	})
}
