package core

import (
	"sort"

	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

// Preset is a named grid plus the program that builds on it.
type Preset interface {
	Name() string
	// Grid allocates a fresh grid for the preset.
	Grid() (automaton.Grid, error)
	// Program returns the stages to run. Randomized rules are seeded from seed.
	Program(seed int64) engine.Program
	Parameters() ParameterSnapshot
}

// Factory constructs a Preset using an optional configuration map.
type Factory func(cfg map[string]string) Preset

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available preset factories.
func Presets() map[string]Factory {
	return presets
}

// PresetNames returns the registered names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
