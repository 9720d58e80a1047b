package automaton

import "slices"

// Count returns Result when the number of same-layer neighbors whose value is
// one of Targets lies in [Min, Max].
type Count struct {
	Targets  []State
	Result   State
	Min, Max int
}

// NewCount builds a Count rule.
func NewCount(targets []State, result State, min, max int) *Count {
	return mustRule(&Count{Targets: targets, Result: result, Min: min, Max: max})
}

// Validate reports malformed parameters.
func (r *Count) Validate() error { return validateCount("count", r) }

func validateCount(name string, r *Count) error {
	if len(r.Targets) == 0 {
		return malformed(name, "no target states")
	}
	if r.Min > r.Max {
		return malformed(name, "min %d > max %d", r.Min, r.Max)
	}
	return requireResult(name, r.Result)
}

// Status implements Rule.
func (r *Count) Status(n Neighborhood, _, _, _ int) State {
	return r.decide(countSlots(n.Same, r.Targets, 0, 1))
}

func (r *Count) decide(count int) State {
	if count >= r.Min && count <= r.Max {
		return r.Result
	}
	return NoChange
}

// countSlots counts ring entries in targets, visiting every step-th slot
// starting at first.
func countSlots(ring, targets []State, first, step int) int {
	n := 0
	for i := first; i < len(ring); i += step {
		if slices.Contains(targets, ring[i]) {
			n++
		}
	}
	return n
}

// CountOdd is Count restricted to odd ring slots (the diagonals of an
// orthogonal ring).
type CountOdd struct {
	Count
}

// NewCountOdd builds a CountOdd rule.
func NewCountOdd(targets []State, result State, min, max int) *CountOdd {
	return mustRule(&CountOdd{Count{Targets: targets, Result: result, Min: min, Max: max}})
}

// Validate reports malformed parameters.
func (r *CountOdd) Validate() error { return validateCount("count_odd", &r.Count) }

// Status implements Rule.
func (r *CountOdd) Status(n Neighborhood, _, _, _ int) State {
	return r.decide(countSlots(n.Same, r.Targets, 1, 2))
}

// CountEven is Count restricted to even ring slots (the axis-adjacent cells
// of an orthogonal ring).
type CountEven struct {
	Count
}

// NewCountEven builds a CountEven rule.
func NewCountEven(targets []State, result State, min, max int) *CountEven {
	return mustRule(&CountEven{Count{Targets: targets, Result: result, Min: min, Max: max}})
}

// Validate reports malformed parameters.
func (r *CountEven) Validate() error { return validateCount("count_even", &r.Count) }

// Status implements Rule.
func (r *CountEven) Status(n Neighborhood, _, _, _ int) State {
	return r.decide(countSlots(n.Same, r.Targets, 0, 2))
}

// CountRange counts same-layer neighbors whose value falls in
// [TargetMin, TargetMin] and returns Result when that count lies in
// [Min, Max].
//
// TargetMax is carried for compatibility with existing rule graphs but the
// value test only uses TargetMin, so in practice the rule counts neighbors
// equal to TargetMin.
type CountRange struct {
	TargetMin, TargetMax State
	Result               State
	Min, Max             int
}

// NewCountRange builds a CountRange rule.
func NewCountRange(targetMin, targetMax, result State, min, max int) *CountRange {
	return mustRule(&CountRange{TargetMin: targetMin, TargetMax: targetMax, Result: result, Min: min, Max: max})
}

// Validate reports malformed parameters.
func (r *CountRange) Validate() error {
	if r.Min > r.Max {
		return malformed("count_range", "min %d > max %d", r.Min, r.Max)
	}
	return requireResult("count_range", r.Result)
}

// Status implements Rule.
func (r *CountRange) Status(n Neighborhood, _, _, _ int) State {
	count := 0
	for _, v := range n.Same {
		if v >= r.TargetMin && v <= r.TargetMin {
			count++
		}
	}
	if count >= r.Min && count <= r.Max {
		return r.Result
	}
	return NoChange
}
