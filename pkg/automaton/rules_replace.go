package automaton

import "slices"

// Const unconditionally returns Value.
type Const struct{ Value State }

// NewConst builds a Const rule.
func NewConst(v State) *Const { return mustRule(&Const{Value: v}) }

// Init is an alias of NewConst used when seeding a fresh grid.
func Init(v State) *Const { return NewConst(v) }

// Validate reports malformed parameters.
func (r *Const) Validate() error {
	if r.Value == NoChange {
		return malformed("const", "value cannot be %s", r.Value)
	}
	return requireResult("const", r.Value)
}

// Status implements Rule.
func (r *Const) Status(Neighborhood, int, int, int) State { return r.Value }

// Replace turns cells holding From into To.
type Replace struct{ From, To State }

// NewReplace builds a Replace rule.
func NewReplace(from, to State) *Replace { return mustRule(&Replace{From: from, To: to}) }

// Validate reports malformed parameters.
func (r *Replace) Validate() error { return requireResult("replace", r.To) }

// Status implements Rule.
func (r *Replace) Status(n Neighborhood, _, _, _ int) State {
	if n.Self == r.From {
		return r.To
	}
	return NoChange
}

// ReplaceRange turns cells whose value lies in [Min, Max] into Result.
type ReplaceRange struct {
	Min, Max State
	Result   State
}

// NewReplaceRange builds a ReplaceRange rule.
func NewReplaceRange(min, max, result State) *ReplaceRange {
	return mustRule(&ReplaceRange{Min: min, Max: max, Result: result})
}

// Validate reports malformed parameters.
func (r *ReplaceRange) Validate() error {
	if r.Min > r.Max {
		return malformed("replace_range", "min %d > max %d", r.Min, r.Max)
	}
	return requireResult("replace_range", r.Result)
}

// Status implements Rule.
func (r *ReplaceRange) Status(n Neighborhood, _, _, _ int) State {
	if n.Self >= r.Min && n.Self <= r.Max {
		return r.Result
	}
	return NoChange
}

// Self returns the first candidate when the cell's value is any of the
// candidates.
type Self struct{ Candidates []State }

// NewSelf builds a Self rule.
func NewSelf(candidates ...State) *Self { return mustRule(&Self{Candidates: candidates}) }

// Validate reports malformed parameters.
func (r *Self) Validate() error {
	if len(r.Candidates) == 0 {
		return malformed("self", "no candidate states")
	}
	return requireResult("self", r.Candidates[0])
}

// Status implements Rule.
func (r *Self) Status(n Neighborhood, _, _, _ int) State {
	if slices.Contains(r.Candidates, n.Self) {
		return r.Candidates[0]
	}
	return NoChange
}
