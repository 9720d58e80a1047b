package life

import (
	"testing"

	"voxel-ca/pkg/automaton"
)

func layerAlive(t *testing.T, g automaton.Grid, z int) map[[2]int]bool {
	t.Helper()
	alive := map[[2]int]bool{}
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			v, err := g.Value(x, y, z)
			if err != nil {
				t.Fatal(err)
			}
			if v == stateAlive {
				alive[[2]int{x, y}] = true
			}
		}
	}
	return alive
}

func sameCells(a, b map[[2]int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(Config{Width: 5, Height: 5, Depth: 2})
	g, err := life.Grid()
	if err != nil {
		t.Fatal(err)
	}
	for _, y := range []int{1, 2, 3} {
		if err := g.SetValue(2, y, 0, stateAlive); err != nil {
			t.Fatal(err)
		}
	}
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}

	rule := Rule()
	g.Apply(rule)
	if got := layerAlive(t, g, 0); !sameCells(got, horizontal) {
		t.Fatalf("after first step layer 0 = %v, expected %v", got, horizontal)
	}
	if got := layerAlive(t, g, 1); !sameCells(got, vertical) {
		t.Fatalf("after first step history layer = %v, expected %v", got, vertical)
	}

	g.Apply(rule)
	if got := layerAlive(t, g, 0); !sameCells(got, vertical) {
		t.Fatalf("after second step layer 0 = %v, expected %v", got, vertical)
	}
	if got := layerAlive(t, g, 1); !sameCells(got, horizontal) {
		t.Fatalf("after second step history layer = %v, expected %v", got, horizontal)
	}
}

func TestProgramSeedIsDeterministic(t *testing.T) {
	cfg := Config{Width: 12, Height: 12, Depth: 1, Density: 40, Generations: 0}
	run := func(seed int64) []automaton.State {
		l := New(cfg)
		g, err := l.Grid()
		if err != nil {
			t.Fatal(err)
		}
		for _, st := range l.Program(seed).Stages {
			for i := 0; i < st.Generations; i++ {
				g.Apply(st.Rule)
			}
		}
		var cells []automaton.State
		g.Each(func(_, _, _ int, v automaton.State) { cells = append(cells, v) })
		return cells
	}
	a, b := run(5), run(5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical seeds", i)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "h": "-1", "density": "101", "generations": "0"})
	if c.Width != 10 || c.Height != DefaultConfig().Height {
		t.Fatalf("unexpected size %dx%d", c.Width, c.Height)
	}
	if c.Density != DefaultConfig().Density {
		t.Fatalf("density out of range must be ignored, got %d", c.Density)
	}
	if c.Generations != 0 {
		t.Fatalf("expected generations 0, got %d", c.Generations)
	}
}
