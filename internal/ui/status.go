package ui

import (
	"fmt"

	"voxel-ca/internal/core"
	"voxel-ca/pkg/automaton"
)

// Status is what the side panel shows about the running preset.
type Status struct {
	Preset     string
	Stage      string
	Generation int
	Layer      int
	Layers     int
	Paused     bool
	Ghost      bool
	// Hover is the cell under the cursor, when there is one.
	Hover *Probe
	// Params are the preset's tunables.
	Params core.ParameterSnapshot
}

// Probe is a sampled cell.
type Probe struct {
	X, Y  int
	Value automaton.State
}

// Lines formats s as panel text, one entry per line.
func Lines(s Status) []string {
	run := "running"
	if s.Paused {
		run = "paused"
	}
	lines := []string{
		s.Preset,
		fmt.Sprintf("stage  %s", s.Stage),
		fmt.Sprintf("gen    %d (%s)", s.Generation, run),
		fmt.Sprintf("layer  %d/%d", s.Layer, max(s.Layers-1, 0)),
	}
	if s.Ghost {
		lines = append(lines, "ghost  on")
	}
	if s.Hover != nil {
		lines = append(lines, fmt.Sprintf("cell   (%d,%d) = %d", s.Hover.X, s.Hover.Y, int(s.Hover.Value)))
	}
	for _, g := range s.Params.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// PickCell maps a screen position to the layer cell drawn there. Hex layers
// are drawn two pixels per cell with odd rows shifted right by one pixel.
func PickCell(sx, sy, scale, w, h int, hex bool) (x, y int, ok bool) {
	if scale <= 0 || sx < 0 || sy < 0 {
		return 0, 0, false
	}
	px, py := sx/scale, sy/scale
	y = py
	x = px
	if hex {
		shifted := px - (y & 1)
		if shifted < 0 {
			return 0, 0, false
		}
		x = shifted / 2
	}
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
