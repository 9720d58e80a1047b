package engine

import (
	"fmt"

	"voxel-ca/pkg/automaton"
)

// Stage applies one rule for a fixed number of generations.
type Stage struct {
	Name        string
	Rule        automaton.Rule
	Generations int
}

// Program is an ordered list of stages, e.g. "rule A for 3 generations,
// then rule B for 5".
type Program struct {
	Name   string
	Stages []Stage
}

// Validate checks every stage before anything is applied.
func (p Program) Validate() error {
	for i, st := range p.Stages {
		if st.Generations < 0 {
			return fmt.Errorf("stage %d (%s): negative generations %d", i, st.Name, st.Generations)
		}
		if err := automaton.Check(st.Rule); err != nil {
			return fmt.Errorf("stage %d (%s): %w", i, st.Name, err)
		}
	}
	return nil
}

// TotalGenerations sums the generations of all stages.
func (p Program) TotalGenerations() int {
	n := 0
	for _, st := range p.Stages {
		n += st.Generations
	}
	return n
}
