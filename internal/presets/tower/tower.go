package tower

import (
	"voxel-ca/internal/core"
	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

// Building materials.
const (
	Wall   automaton.State = 1
	Facade automaton.State = 2
	Window automaton.State = 3
	Roof   automaton.State = 4
)

// Config holds parameters for the tower generator.
type Config struct {
	Width   int
	Depth   int
	Floors  int
	Margin  int
	Windows int
	Hex     bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 24, Depth: 24, Floors: 12, Margin: 3, Windows: 40}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	core.IntFromMap(cfg, "w", &c.Width, core.Positive)
	core.IntFromMap(cfg, "h", &c.Depth, core.Positive)
	core.IntFromMap(cfg, "floors", &c.Floors, core.Positive)
	core.IntFromMap(cfg, "margin", &c.Margin, core.NonNegative)
	core.IntFromMap(cfg, "windows", &c.Windows, func(v int) bool { return v >= 0 && v <= 100 })
	core.BoolFromMap(cfg, "hex", &c.Hex)
	return c
}

// Tower grows a building from a footprint: the ground floor is laid out,
// extruded upward, skinned with a facade, punched with windows and capped.
type Tower struct {
	cfg Config
}

// New creates a tower preset.
func New(cfg Config) *Tower { return &Tower{cfg: cfg} }

// Name returns the preset identifier.
func (t *Tower) Name() string { return "tower" }

// Grid allocates the building volume.
func (t *Tower) Grid() (automaton.Grid, error) {
	topo := automaton.Orthogonal
	if t.cfg.Hex {
		topo = automaton.Hexagonal
	}
	return automaton.NewGrid(topo, t.cfg.Width, t.cfg.Depth, t.cfg.Floors)
}

func (t *Tower) footprint() automaton.Rule {
	m := t.cfg.Margin
	if t.cfg.Hex {
		radius := max((min(t.cfg.Width, t.cfg.Depth)-2*m)/2, 0)
		return automaton.NewBuildCylinderRadiusHex(Wall, t.cfg.Width/2, t.cfg.Depth/2, 1, radius)
	}
	return automaton.NewBuildBox(Wall, m, m, 0, max(t.cfg.Width-2*m, 0), max(t.cfg.Depth-2*m, 0), 1)
}

// Program returns the building stages. seed drives window placement.
func (t *Tower) Program(seed int64) engine.Program {
	outside := []automaton.State{automaton.Empty, automaton.OutOfBounds}
	return engine.Program{
		Name: t.Name(),
		Stages: []engine.Stage{
			{Name: "footprint", Rule: t.footprint(), Generations: 1},
			{
				Name:        "extrude",
				Rule:        automaton.NewKeep([]automaton.State{Wall}, automaton.CopyLowerFloor{}),
				Generations: max(t.cfg.Floors-1, 0),
			},
			{
				Name: "facade",
				Rule: automaton.NewAnd(
					automaton.NewSelf(Wall),
					automaton.NewCount(outside, Facade, 1, 8),
				),
				Generations: 1,
			},
			{
				Name:        "windows",
				Rule:        automaton.NewSeededRandom(t.cfg.Windows, automaton.NewReplace(Facade, Window), seed),
				Generations: 1,
			},
			{
				Name:        "roof",
				Rule:        automaton.NewTargetFloor(t.cfg.Floors-1, automaton.NewReplaceRange(Wall, Window, Roof)),
				Generations: 1,
			},
		},
	}
}

// Parameters reports the preset's tunables.
func (t *Tower) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Lot", Params: []core.Parameter{
			core.IntParam("w", "Width", t.cfg.Width),
			core.IntParam("h", "Depth", t.cfg.Depth),
			core.IntParam("margin", "Setback", t.cfg.Margin),
			core.BoolParam("hex", "Hexagonal", t.cfg.Hex),
		}},
		{Name: "Building", Params: []core.Parameter{
			core.IntParam("floors", "Floors", t.cfg.Floors),
			core.IntParam("windows", "Window share %", t.cfg.Windows),
		}},
	}}
}

func init() {
	core.Register("tower", func(cfg map[string]string) core.Preset {
		return New(FromMap(cfg))
	})
}
