package automaton

// CopyLowerFloor copies the value of the cell directly below. Nothing is
// copied from beneath the bottom layer.
type CopyLowerFloor struct{}

// Status implements Rule.
func (CopyLowerFloor) Status(n Neighborhood, _, _, _ int) State {
	if n.Lower.OutOfBounds() {
		return NoChange
	}
	return n.Lower
}

// CopyUpperFloor copies the value of the cell directly above. Nothing is
// copied from above the top layer.
type CopyUpperFloor struct{}

// Status implements Rule.
func (CopyUpperFloor) Status(n Neighborhood, _, _, _ int) State {
	if n.Upper.OutOfBounds() {
		return NoChange
	}
	return n.Upper
}

// SwapFloor evaluates Rule against a copy of the neighborhood in which the
// relative floors A and B have been exchanged.
type SwapFloor struct {
	A, B int
	Rule Rule
}

// NewSwapFloor builds a SwapFloor rule.
func NewSwapFloor(a, b int, rule Rule) *SwapFloor {
	return mustRule(&SwapFloor{A: a, B: b, Rule: rule})
}

// Validate reports malformed parameters.
func (r *SwapFloor) Validate() error { return requireChild("swap_floor", r.Rule) }

// Children implements composite.
func (r *SwapFloor) Children() []Rule { return []Rule{r.Rule} }

// Status implements Rule.
func (r *SwapFloor) Status(n Neighborhood, x, y, z int) State {
	t := n.Clone()
	t.SwapFloors(r.A, r.B)
	return r.Rule.Status(t, x, y, z)
}

// TargetFloor applies Rule only on layer Z.
type TargetFloor struct {
	Z    int
	Rule Rule
}

// NewTargetFloor builds a TargetFloor rule.
func NewTargetFloor(z int, rule Rule) *TargetFloor {
	return mustRule(&TargetFloor{Z: z, Rule: rule})
}

// Validate reports malformed parameters.
func (r *TargetFloor) Validate() error { return requireChild("target_floor", r.Rule) }

// Children implements composite.
func (r *TargetFloor) Children() []Rule { return []Rule{r.Rule} }

// Status implements Rule.
func (r *TargetFloor) Status(n Neighborhood, x, y, z int) State {
	if z != r.Z {
		return NoChange
	}
	return r.Rule.Status(n, x, y, z)
}
