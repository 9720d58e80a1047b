// Package automaton implements a 3-D voxel cellular automaton: a padded grid
// with orthogonal or hexagonal-prism topology and a small algebra of rules
// that decide each cell's next state from its neighborhood.
package automaton

import "strconv"

// State is the integer value of a single cell. Apart from the reserved
// sentinels below, every value is a caller-defined cell type.
type State int

const (
	// Empty is the background state every logical cell starts in.
	Empty State = 0
	// NoChange is only ever returned by a Rule. It tells the grid to keep the
	// current value and is never stored.
	NoChange State = -1
	// OutOfBounds fills the halo around the logical grid. Rules may read and
	// test for it but it is never a real cell type.
	OutOfBounds State = -2
)

// Unchanged reports whether s is the NoChange sentinel.
func (s State) Unchanged() bool { return s == NoChange }

// OutOfBounds reports whether s is the halo sentinel.
func (s State) OutOfBounds() bool { return s == OutOfBounds }

func (s State) String() string {
	switch s {
	case NoChange:
		return "no-change"
	case OutOfBounds:
		return "out-of-bounds"
	default:
		return strconv.Itoa(int(s))
	}
}
