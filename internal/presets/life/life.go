package life

import (
	"voxel-ca/internal/core"
	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

const (
	stateDead  automaton.State = 0
	stateAlive automaton.State = 1
)

// Config holds parameters for the layered Game of Life.
type Config struct {
	Width       int
	Height      int
	Depth       int
	Density     int
	Generations int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Depth: 8, Density: 30, Generations: 32}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	core.IntFromMap(cfg, "w", &c.Width, core.Positive)
	core.IntFromMap(cfg, "h", &c.Height, core.Positive)
	core.IntFromMap(cfg, "d", &c.Depth, core.Positive)
	core.IntFromMap(cfg, "density", &c.Density, func(v int) bool { return v >= 0 && v <= 100 })
	core.IntFromMap(cfg, "generations", &c.Generations, core.NonNegative)
	return c
}

// Life runs Conway's Game of Life on the bottom layer. Every layer above
// copies the one below it each generation, so layer z holds the board as it
// was z generations ago.
type Life struct {
	cfg Config
}

// New returns a Life preset.
func New(cfg Config) *Life { return &Life{cfg: cfg} }

// Name returns the preset identifier.
func (l *Life) Name() string { return "life" }

// Grid allocates the board and its history layers.
func (l *Life) Grid() (automaton.Grid, error) {
	return automaton.NewOrthoGrid(l.cfg.Width, l.cfg.Height, l.cfg.Depth)
}

// Rule is one Life generation on layer 0 plus the history shift above it.
func Rule() automaton.Rule {
	alive := []automaton.State{stateAlive}
	conway := automaton.NewOr(
		automaton.NewAnd(automaton.NewSelf(stateDead), automaton.NewCount(alive, stateAlive, 3, 3)),
		automaton.NewAnd(automaton.NewSelf(stateAlive), automaton.NewCount(alive, stateDead, 0, 1)),
		automaton.NewAnd(automaton.NewSelf(stateAlive), automaton.NewCount(alive, stateDead, 4, 8)),
	)
	return automaton.NewOr(
		automaton.CopyLowerFloor{},
		automaton.NewTargetFloor(0, conway),
	)
}

// Program seeds layer 0 randomly and then evolves it.
func (l *Life) Program(seed int64) engine.Program {
	return engine.Program{
		Name: l.Name(),
		Stages: []engine.Stage{
			{
				Name:        "seed",
				Rule:        automaton.NewTargetFloor(0, automaton.NewSeededRandom(l.cfg.Density, automaton.NewConst(stateAlive), seed)),
				Generations: 1,
			},
			{Name: "evolve", Rule: Rule(), Generations: l.cfg.Generations},
		},
	}
}

// Parameters reports the preset's tunables.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("w", "Width", l.cfg.Width),
			core.IntParam("h", "Height", l.cfg.Height),
			core.IntParam("d", "History layers", l.cfg.Depth),
		}},
		{Name: "Run", Params: []core.Parameter{
			core.IntParam("density", "Initial density %", l.cfg.Density),
			core.IntParam("generations", "Generations", l.cfg.Generations),
		}},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Preset {
		return New(FromMap(cfg))
	})
}
