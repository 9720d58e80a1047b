package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// never is a rule whose condition is globally false.
var never = RuleFunc(func(Neighborhood, int, int, int) State { return NoChange })

func ring(self State, same ...State) Neighborhood {
	return Neighborhood{Self: self, Lower: OutOfBounds, Upper: OutOfBounds, Same: same}
}

func TestBooleanCombinatorLaws(t *testing.T) {
	n := ring(Empty)
	assert.Equal(t, State(4), NewAnd(NewConst(3), NewConst(4)).Status(n, 0, 0, 0))
	assert.Equal(t, NoChange, NewAnd(NewConst(3), never).Status(n, 0, 0, 0))
	assert.Equal(t, State(3), NewOr(never, NewConst(3)).Status(n, 0, 0, 0))
	assert.Equal(t, State(2), NewOr(NewConst(1), NewConst(2), never).Status(n, 0, 0, 0))
	assert.Equal(t, NoChange, NewOr(never, never).Status(n, 0, 0, 0))
}

func TestAndShortCircuits(t *testing.T) {
	calls := 0
	counted := RuleFunc(func(Neighborhood, int, int, int) State {
		calls++
		return 5
	})
	assert.Equal(t, NoChange, NewAnd(counted, never, counted).Status(ring(Empty), 0, 0, 0))
	assert.Equal(t, 1, calls)

	calls = 0
	NewOr(counted, never, counted).Status(ring(Empty), 0, 0, 0)
	assert.Equal(t, 2, calls, "Or evaluates every child")
}

func TestArithmeticFoldsTreatNoChangeAsInteger(t *testing.T) {
	n := ring(Empty)
	assert.Equal(t, State(9), NewMax(NewConst(2), NewConst(9), NewConst(4)).Status(n, 0, 0, 0))
	assert.Equal(t, State(2), NewMin(NewConst(2), NewConst(9), NewConst(4)).Status(n, 0, 0, 0))
	assert.Equal(t, State(15), NewAdd(NewConst(2), NewConst(9), NewConst(4)).Status(n, 0, 0, 0))

	assert.Equal(t, NoChange, NewMax(never, NewConst(-5)).Status(n, 0, 0, 0))
	assert.Equal(t, NoChange, NewMin(never, NewConst(4)).Status(n, 0, 0, 0))
	assert.Equal(t, State(3), NewAdd(never, NewConst(4)).Status(n, 0, 0, 0))
	assert.Equal(t, OutOfBounds, NewAdd(never, never).Status(n, 0, 0, 0))
}

func TestSwapScenario(t *testing.T) {
	swap := NewSwap(3, 9, nil)
	assert.Equal(t, State(9), swap.Status(ring(3), 0, 0, 0))
	assert.Equal(t, State(3), swap.Status(ring(9), 0, 0, 0))
	assert.Equal(t, State(5), swap.Status(ring(5), 0, 0, 0))

	wrapped := NewSwap(3, 9, NewConst(9))
	assert.Equal(t, State(3), wrapped.Status(ring(5), 0, 0, 0))
	assert.Equal(t, NoChange, NewSwap(3, 9, never).Status(ring(3), 0, 0, 0))
}

func TestCountVariants(t *testing.T) {
	// Axis-adjacent slots hold 2, diagonals hold 1.
	n := ring(Empty, 2, 1, 2, 1, 2, 1, 2, 1)

	assert.Equal(t, State(6), NewCount([]State{1, 2}, 6, 8, 8).Status(n, 0, 0, 0))
	assert.Equal(t, NoChange, NewCount([]State{2}, 6, 5, 8).Status(n, 0, 0, 0))
	assert.Equal(t, State(6), NewCountEven([]State{2}, 6, 4, 4).Status(n, 0, 0, 0))
	assert.Equal(t, NoChange, NewCountEven([]State{1}, 6, 1, 8).Status(n, 0, 0, 0))
	assert.Equal(t, State(6), NewCountOdd([]State{1}, 6, 4, 4).Status(n, 0, 0, 0))
	assert.Equal(t, State(6), NewCountOdd([]State{2}, 6, 0, 0).Status(n, 0, 0, 0))
}

func TestCountSeesHaloValues(t *testing.T) {
	g, err := NewOrthoGrid(3, 3, 1)
	require.NoError(t, err)
	g.Apply(NewCount([]State{OutOfBounds}, 1, 5, 5))
	assert.Equal(t, 4, g.Count(1), "only corners border five halo cells")
}

func TestCountRangeComparesLowerBoundOnly(t *testing.T) {
	n := ring(Empty, 2, 3, 3, 3, 2, 4, 0, 0)
	r := NewCountRange(2, 3, 8, 2, 2)
	assert.Equal(t, State(8), r.Status(n, 0, 0, 0), "only the two cells equal to 2 are counted")

	wide := NewCountRange(2, 3, 8, 5, 5)
	assert.Equal(t, NoChange, wide.Status(n, 0, 0, 0))
}

func TestReplaceRules(t *testing.T) {
	assert.Equal(t, State(4), NewReplace(1, 4).Status(ring(1), 0, 0, 0))
	assert.Equal(t, NoChange, NewReplace(1, 4).Status(ring(2), 0, 0, 0))

	rr := NewReplaceRange(2, 5, 0)
	assert.Equal(t, Empty, rr.Status(ring(2), 0, 0, 0))
	assert.Equal(t, Empty, rr.Status(ring(5), 0, 0, 0))
	assert.Equal(t, NoChange, rr.Status(ring(6), 0, 0, 0))

	self := NewSelf(7, 3, 4)
	assert.Equal(t, State(7), self.Status(ring(4), 0, 0, 0))
	assert.Equal(t, State(7), self.Status(ring(7), 0, 0, 0))
	assert.Equal(t, NoChange, self.Status(ring(5), 0, 0, 0))
}

func TestKeepProtectsTargets(t *testing.T) {
	keep := NewKeep([]State{2, 3}, NewConst(9))
	assert.Equal(t, NoChange, keep.Status(ring(2), 0, 0, 0))
	assert.Equal(t, State(9), keep.Status(ring(4), 0, 0, 0))

	bare := NewKeep([]State{2}, nil)
	assert.Equal(t, State(4), bare.Status(ring(4), 0, 0, 0))
	assert.Equal(t, NoChange, bare.Status(ring(2), 0, 0, 0))
}

func TestCopyFloors(t *testing.T) {
	n := Neighborhood{Self: 1, Lower: 4, Upper: OutOfBounds}
	assert.Equal(t, State(4), CopyLowerFloor{}.Status(n, 0, 0, 1))
	assert.Equal(t, NoChange, CopyUpperFloor{}.Status(n, 0, 0, 1))

	n = Neighborhood{Self: 1, Lower: OutOfBounds, Upper: 6}
	assert.Equal(t, NoChange, CopyLowerFloor{}.Status(n, 0, 0, 0))
	assert.Equal(t, State(6), CopyUpperFloor{}.Status(n, 0, 0, 0))
}

func TestCopyLowerFloorGrowsColumns(t *testing.T) {
	g, err := NewOrthoGrid(2, 2, 4)
	require.NoError(t, err)
	g.Apply(NewBuildBox(5, 0, 0, 0, 1, 1, 1))
	for i := 0; i < 3; i++ {
		g.Apply(CopyLowerFloor{})
	}
	for z := 0; z < 4; z++ {
		v, err := g.Value(0, 0, z)
		require.NoError(t, err)
		assert.Equal(t, State(5), v, "layer %d", z)
	}
	assert.Equal(t, 4, g.Count(5))
}

func TestSwapFloorLeavesInputUntouched(t *testing.T) {
	n := Neighborhood{
		Self: 5, Lower: 2, Upper: 7,
		Same:  []State{0, 0},
		Below: []State{1, 1},
		Above: []State{3, 3},
	}
	r := NewSwapFloor(0, -1, NewReplace(2, 8))
	assert.Equal(t, State(8), r.Status(n, 0, 0, 0))
	assert.Equal(t, State(5), n.Self)
	assert.Equal(t, State(2), n.Lower)

	counting := NewSwapFloor(1, 0, NewCount([]State{3}, 4, 2, 2))
	assert.Equal(t, State(4), counting.Status(n, 0, 0, 0))
	assert.Equal(t, []State{0, 0}, n.Same)
	assert.Equal(t, []State{3, 3}, n.Above)
}

func TestTargetFloor(t *testing.T) {
	r := NewTargetFloor(2, NewConst(6))
	assert.Equal(t, State(6), r.Status(ring(0), 4, 4, 2))
	assert.Equal(t, NoChange, r.Status(ring(0), 4, 4, 1))
}

func TestBuildCylinder(t *testing.T) {
	r := NewBuildCylinder(3, 1, 2, 2)
	assert.Equal(t, State(3), r.Status(ring(0), 1, 2, 0))
	assert.Equal(t, State(3), r.Status(ring(0), 1, 2, 1))
	assert.Equal(t, NoChange, r.Status(ring(0), 1, 2, 2))
	assert.Equal(t, NoChange, r.Status(ring(0), 2, 2, 0))

	disc := NewBuildCylinderRadius(3, 4, 4, 1, 2)
	assert.Equal(t, State(3), disc.Status(ring(0), 6, 4, 0))
	assert.Equal(t, NoChange, disc.Status(ring(0), 6, 5, 0))
	assert.Equal(t, NoChange, disc.Status(ring(0), 4, 4, 1))
}

func TestConstIgnoresEverything(t *testing.T) {
	c := Init(5)
	assert.Equal(t, State(5), c.Status(ring(OutOfBounds), -3, 100, 7))
	assert.Equal(t, State(5), c.Status(Neighborhood{}, 0, 0, 0))
}

type scriptedSource struct {
	rolls []int
	next  int
}

func (s *scriptedSource) IntN(int) int {
	v := s.rolls[s.next%len(s.rolls)]
	s.next++
	return v
}

func TestRandomUsesSourceRoll(t *testing.T) {
	src := &scriptedSource{rolls: []int{10, 60, 39, 40}}
	r := NewRandom(40, NewConst(2), src)
	got := []State{}
	for i := 0; i < 4; i++ {
		got = append(got, r.Status(ring(0), 0, 0, 0))
	}
	assert.Equal(t, []State{2, NoChange, 2, NoChange}, got)
}

func TestRandomBoundsAndSeeding(t *testing.T) {
	none := NewSeededRandom(0, NewConst(1), 3)
	all := NewSeededRandom(100, NewConst(1), 3)
	for i := 0; i < 100; i++ {
		require.Equal(t, NoChange, none.Status(ring(0), 0, 0, 0))
		require.Equal(t, State(1), all.Status(ring(0), 0, 0, 0))
	}

	run := func(seed int64) []State {
		g, err := NewOrthoGrid(6, 6, 2)
		require.NoError(t, err)
		g.Apply(NewSeededRandom(50, NewConst(1), seed))
		return snapshotCells(g)
	}
	assert.Equal(t, run(11), run(11))
	assert.NotEqual(t, run(11), run(12))
}
