package automaton

// Neighborhood is the frozen view of one cell handed to a Rule: the centre
// cell of the layer below, the cell's own layer and the layer above, each with
// its ring of same-layer neighbors.
//
// Ring order is fixed per topology and stable across calls:
//
//	orthogonal: E, SE, S, SW, W, NW, N, NE (+y is south); even slots are
//	            the axis-adjacent cells, odd slots the diagonals.
//	hexagonal:  E, SE, SW, W, NW, NE relative to the queried row's shift.
//
// Rules must treat a Neighborhood as read-only; use Clone before modifying.
type Neighborhood struct {
	Self  State
	Upper State
	Lower State

	Same  []State
	Above []State
	Below []State
}

// floor normalizes a relative floor index: -1 is below, 1 is above and
// anything else is the cell's own layer.
func floor(rel int) int {
	if rel == -1 || rel == 1 {
		return rel
	}
	return 0
}

// Floor returns the centre value of the relative floor rel.
func (n Neighborhood) Floor(rel int) State {
	switch floor(rel) {
	case -1:
		return n.Lower
	case 1:
		return n.Upper
	default:
		return n.Self
	}
}

// SetFloor replaces the centre value of the relative floor rel.
func (n *Neighborhood) SetFloor(rel int, v State) {
	switch floor(rel) {
	case -1:
		n.Lower = v
	case 1:
		n.Upper = v
	default:
		n.Self = v
	}
}

// Ring returns the neighbor ring of the relative floor rel.
func (n Neighborhood) Ring(rel int) []State {
	switch floor(rel) {
	case -1:
		return n.Below
	case 1:
		return n.Above
	default:
		return n.Same
	}
}

// SetRing replaces the neighbor ring of the relative floor rel.
func (n *Neighborhood) SetRing(rel int, ring []State) {
	switch floor(rel) {
	case -1:
		n.Below = ring
	case 1:
		n.Above = ring
	default:
		n.Same = ring
	}
}

// SwapFloors exchanges the centre value and the ring of two relative floors.
func (n *Neighborhood) SwapFloors(a, b int) {
	va, vb := n.Floor(a), n.Floor(b)
	ra, rb := n.Ring(a), n.Ring(b)
	n.SetFloor(a, vb)
	n.SetFloor(b, va)
	n.SetRing(a, rb)
	n.SetRing(b, ra)
}

// Clone returns a deep copy whose rings do not share storage with n.
func (n Neighborhood) Clone() Neighborhood {
	c := n
	c.Same = append([]State(nil), n.Same...)
	c.Above = append([]State(nil), n.Above...)
	c.Below = append([]State(nil), n.Below...)
	return c
}
