package automaton

import (
	"sync"

	"voxel-ca/pkg/core"
)

// RandomSource supplies the randomness for Random rules.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Random delegates to Rule with probability Percent/100 and otherwise
// returns NoChange. Each Random owns its source; evaluation is serialized so
// one rule may be shared by parallel steps.
type Random struct {
	Percent int
	Rule    Rule
	Source  RandomSource

	mu sync.Mutex
}

// NewRandom builds a Random rule drawing from src.
func NewRandom(percent int, rule Rule, src RandomSource) *Random {
	return mustRule(&Random{Percent: percent, Rule: rule, Source: src})
}

// NewSeededRandom builds a Random rule with its own generator seeded from seed.
func NewSeededRandom(percent int, rule Rule, seed int64) *Random {
	return NewRandom(percent, rule, core.NewRNG(seed))
}

// Validate reports malformed parameters.
func (r *Random) Validate() error {
	if r.Percent < 0 || r.Percent > 100 {
		return malformed("random", "percent %d not in [0,100]", r.Percent)
	}
	if r.Source == nil {
		return malformed("random", "missing random source")
	}
	return requireChild("random", r.Rule)
}

// Children implements composite.
func (r *Random) Children() []Rule { return []Rule{r.Rule} }

// Status implements Rule.
func (r *Random) Status(n Neighborhood, x, y, z int) State {
	r.mu.Lock()
	roll := r.Source.IntN(100)
	r.mu.Unlock()
	if roll >= r.Percent {
		return NoChange
	}
	return r.Rule.Status(n, x, y, z)
}
