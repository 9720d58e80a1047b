package automaton

import "slices"

// Max returns the largest result of its children. NoChange takes part in
// the comparison as the plain integer -1.
type Max struct{ Rules []Rule }

// NewMax builds a Max rule.
func NewMax(rules ...Rule) *Max { return mustRule(&Max{Rules: rules}) }

// Validate reports malformed parameters.
func (r *Max) Validate() error { return requireChildren("max", r.Rules) }

// Children implements composite.
func (r *Max) Children() []Rule { return r.Rules }

// Status implements Rule.
func (r *Max) Status(n Neighborhood, x, y, z int) State {
	out := r.Rules[0].Status(n, x, y, z)
	for _, child := range r.Rules[1:] {
		out = max(out, child.Status(n, x, y, z))
	}
	return out
}

// Min returns the smallest result of its children. NoChange takes part in
// the comparison as the plain integer -1.
type Min struct{ Rules []Rule }

// NewMin builds a Min rule.
func NewMin(rules ...Rule) *Min { return mustRule(&Min{Rules: rules}) }

// Validate reports malformed parameters.
func (r *Min) Validate() error { return requireChildren("min", r.Rules) }

// Children implements composite.
func (r *Min) Children() []Rule { return r.Rules }

// Status implements Rule.
func (r *Min) Status(n Neighborhood, x, y, z int) State {
	out := r.Rules[0].Status(n, x, y, z)
	for _, child := range r.Rules[1:] {
		out = min(out, child.Status(n, x, y, z))
	}
	return out
}

// Add sums the results of its children. A child returning NoChange adds -1,
// so two NoChange results sum to OutOfBounds.
type Add struct{ Rules []Rule }

// NewAdd builds an Add rule.
func NewAdd(rules ...Rule) *Add { return mustRule(&Add{Rules: rules}) }

// Validate reports malformed parameters.
func (r *Add) Validate() error { return requireChildren("add", r.Rules) }

// Children implements composite.
func (r *Add) Children() []Rule { return r.Rules }

// Status implements Rule.
func (r *Add) Status(n Neighborhood, x, y, z int) State {
	var sum State
	for _, child := range r.Rules {
		sum += child.Status(n, x, y, z)
	}
	return sum
}

// And evaluates its children in order and stops at the first NoChange.
// Otherwise it returns the last child's result.
type And struct{ Rules []Rule }

// NewAnd builds an And rule.
func NewAnd(rules ...Rule) *And { return mustRule(&And{Rules: rules}) }

// Validate reports malformed parameters.
func (r *And) Validate() error { return requireChildren("and", r.Rules) }

// Children implements composite.
func (r *And) Children() []Rule { return r.Rules }

// Status implements Rule.
func (r *And) Status(n Neighborhood, x, y, z int) State {
	out := NoChange
	for _, child := range r.Rules {
		out = child.Status(n, x, y, z)
		if out.Unchanged() {
			return NoChange
		}
	}
	return out
}

// Or evaluates every child and returns the last result that is not
// NoChange.
type Or struct{ Rules []Rule }

// NewOr builds an Or rule.
func NewOr(rules ...Rule) *Or { return mustRule(&Or{Rules: rules}) }

// Validate reports malformed parameters.
func (r *Or) Validate() error { return requireChildren("or", r.Rules) }

// Children implements composite.
func (r *Or) Children() []Rule { return r.Rules }

// Status implements Rule.
func (r *Or) Status(n Neighborhood, x, y, z int) State {
	out := NoChange
	for _, child := range r.Rules {
		if v := child.Status(n, x, y, z); !v.Unchanged() {
			out = v
		}
	}
	return out
}

// Swap exchanges A and B: a base value equal to A becomes B and vice versa,
// anything else passes through. The base is the cell's own value, or Rule's
// result when Rule is set.
type Swap struct {
	A, B State
	Rule Rule
}

// NewSwap builds a Swap rule. rule may be nil.
func NewSwap(a, b State, rule Rule) *Swap { return mustRule(&Swap{A: a, B: b, Rule: rule}) }

// Children implements composite.
func (r *Swap) Children() []Rule {
	if r.Rule == nil {
		return nil
	}
	return []Rule{r.Rule}
}

// Status implements Rule.
func (r *Swap) Status(n Neighborhood, x, y, z int) State {
	base := n.Self
	if r.Rule != nil {
		base = r.Rule.Status(n, x, y, z)
	}
	switch base {
	case r.A:
		return r.B
	case r.B:
		return r.A
	default:
		return base
	}
}

// Keep protects cells whose value is in Targets: they always get NoChange.
// Other cells get Rule's result, or their own value when Rule is nil.
type Keep struct {
	Targets []State
	Rule    Rule
}

// NewKeep builds a Keep rule. rule may be nil.
func NewKeep(targets []State, rule Rule) *Keep {
	return mustRule(&Keep{Targets: targets, Rule: rule})
}

// Validate reports malformed parameters.
func (r *Keep) Validate() error {
	if len(r.Targets) == 0 {
		return malformed("keep", "no target states")
	}
	return nil
}

// Children implements composite.
func (r *Keep) Children() []Rule {
	if r.Rule == nil {
		return nil
	}
	return []Rule{r.Rule}
}

// Status implements Rule.
func (r *Keep) Status(n Neighborhood, x, y, z int) State {
	if slices.Contains(r.Targets, n.Self) {
		return NoChange
	}
	if r.Rule == nil {
		return n.Self
	}
	return r.Rule.Status(n, x, y, z)
}
