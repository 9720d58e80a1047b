package ruleconf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

func runFile(t *testing.T, f *File) automaton.Grid {
	t.Helper()
	g, err := f.Grid()
	require.NoError(t, err)
	p, err := f.Program()
	require.NoError(t, err)
	_, err = engine.NewRunner().Run(context.Background(), g, p)
	require.NoError(t, err)
	return g
}

func cells(g automaton.Grid) []automaton.State {
	var out []automaton.State
	g.Each(func(_, _, _ int, v automaton.State) { out = append(out, v) })
	return out
}

func TestLoadTowerProgram(t *testing.T) {
	f, err := Load("testdata/tower.yaml")
	require.NoError(t, err)
	assert.Equal(t, "tower", f.Name)
	require.Len(t, f.Stages, 4)

	p, err := f.Program()
	require.NoError(t, err)
	assert.Equal(t, 6, p.TotalGenerations())
	assert.IsType(t, &automaton.BuildBox{}, p.Stages[0].Rule)
	assert.IsType(t, &automaton.Keep{}, p.Stages[1].Rule)
	assert.IsType(t, &automaton.Random{}, p.Stages[3].Rule)

	g := runFile(t, f)
	assert.Equal(t, automaton.Orthogonal, g.Topology())
	assert.Equal(t, 48, g.Count(3), "outer ring of every floor becomes windows")
	assert.Equal(t, 16, g.Count(1), "inner core stays solid")

	noise, empty := g.Count(9), g.Count(automaton.Empty)
	assert.Equal(t, 80, noise+empty)
	assert.Positive(t, noise)
	assert.Positive(t, empty)
}

func TestRandomSeedsAreReproducible(t *testing.T) {
	a, err := Load("testdata/tower.yaml")
	require.NoError(t, err)
	b, err := Load("testdata/tower.yaml")
	require.NoError(t, err)
	assert.Equal(t, cells(runFile(t, a)), cells(runFile(t, b)))

	b.Seed = 8
	assert.NotEqual(t, cells(runFile(t, a)), cells(runFile(t, b)))
}

func TestParseHexProgram(t *testing.T) {
	f, err := Parse([]byte(`
name: disc
topology: hex
size: [7, 7, 2]
stages:
  - generations: 1
    rule: {type: cylinder_radius_hex, result: 4, center: [3, 3], height: 1, radius: 1}
  - generations: 1
    rule:
      type: target_floor
      z: 1
      rule: {type: copy_lower}
`))
	require.NoError(t, err)
	p, err := f.Program()
	require.NoError(t, err)
	assert.Equal(t, "stage-0", p.Stages[0].Name)

	g := runFile(t, f)
	assert.Equal(t, automaton.Hexagonal, g.Topology())
	assert.Equal(t, 14, g.Count(4))
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"size":          "size: [1, 2]\nstages: [{generations: 1, rule: {type: const, value: 1}}]",
		"no stages":     "size: [1, 1, 1]",
		"unknown field": "size: [1, 1, 1]\ncolour: red\nstages: [{generations: 1, rule: {type: const, value: 1}}]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestProgramErrors(t *testing.T) {
	cases := map[string]string{
		"missing rule":    "{generations: 1}",
		"unknown type":    "{generations: 1, rule: {type: explode}}",
		"no type":         "{generations: 1, rule: {value: 3}}",
		"missing result":  "{generations: 1, rule: {type: count, targets: [1], min: 0, max: 2}}",
		"short origin":    "{generations: 1, rule: {type: box, result: 1, origin: [0, 0], extent: [1, 1, 1]}}",
		"child missing":   "{generations: 1, rule: {type: swap_floor, a: 0, b: 1}}",
		"nested unknown":  "{generations: 1, rule: {type: or, rules: [{type: const, value: 1}, {type: nope}]}}",
		"negative gens":   "{generations: -2, rule: {type: const, value: 1}}",
		"random percent":  "{generations: 1, rule: {type: random, percent: 120, rule: {type: const, value: 1}}}",
		"empty and":       "{generations: 1, rule: {type: and}}",
		"inverted counts": "{generations: 1, rule: {type: count, targets: [1], result: 2, min: 5, max: 1}}",
	}
	for name, stage := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := Parse([]byte("size: [2, 2, 2]\nstages:\n  - " + stage + "\n"))
			require.NoError(t, err)
			_, err = f.Program()
			assert.Error(t, err)
		})
	}

	f, err := Parse([]byte("size: [2, 2, 2]\nstages: [{generations: 1, rule: {type: and}}]"))
	require.NoError(t, err)
	_, err = f.Program()
	assert.ErrorIs(t, err, automaton.ErrMalformedRule)
}

func TestGridRejectsBadShape(t *testing.T) {
	f := &File{Topology: "hex", Size: []int{2, -1, 2}}
	_, err := f.Grid()
	assert.ErrorIs(t, err, automaton.ErrInvalidDimension)

	f = &File{Topology: "square", Size: []int{2, 2, 2}}
	_, err = f.Grid()
	assert.Error(t, err)
}
