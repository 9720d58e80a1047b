package elementary

import (
	"testing"

	"voxel-ca/pkg/automaton"
)

func row(t *testing.T, g automaton.Grid, z int) []int {
	t.Helper()
	var on []int
	for x := 0; x < g.Size().X; x++ {
		v, err := g.Value(x, 0, z)
		if err != nil {
			t.Fatal(err)
		}
		if v == 1 {
			on = append(on, x)
		}
	}
	return on
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRule90Sierpinski(t *testing.T) {
	e := New(Config{Width: 7, Height: 4, Rule: 90})
	g, err := e.Grid()
	if err != nil {
		t.Fatal(err)
	}
	for _, st := range e.Program(0).Stages {
		for i := 0; i < st.Generations; i++ {
			g.Apply(st.Rule)
		}
	}
	expected := [][]int{{3}, {2, 4}, {1, 5}, {0, 2, 4, 6}}
	for z, want := range expected {
		if got := row(t, g, z); !equal(got, want) {
			t.Fatalf("layer %d: expected %v, got %v", z, want, got)
		}
	}
}

func TestWolframLeavesBottomLayer(t *testing.T) {
	n := automaton.Neighborhood{Self: 1, Lower: automaton.OutOfBounds}
	if got := (Wolfram{Code: 255}).Status(n, 0, 0, 0); got != automaton.NoChange {
		t.Fatalf("expected NoChange on the bottom layer, got %v", got)
	}
}

func TestFromMapRuleRange(t *testing.T) {
	if c := FromMap(map[string]string{"rule": "300"}); c.Rule != DefaultConfig().Rule {
		t.Fatalf("out of range rule should be ignored, got %d", c.Rule)
	}
	if c := FromMap(map[string]string{"rule": "30"}); c.Rule != 30 {
		t.Fatalf("expected rule 30, got %d", c.Rule)
	}
}
