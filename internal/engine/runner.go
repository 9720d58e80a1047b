// Package engine drives a grid through a program of rule stages.
package engine

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"voxel-ca/pkg/automaton"
)

// StageReport summarizes one executed stage.
type StageReport struct {
	Name        string
	Generations int
	Changed     int
	Elapsed     time.Duration
}

// CensusEntry is the number of cells holding one state.
type CensusEntry struct {
	State automaton.State
	Cells int
}

// Report is the outcome of a Run.
type Report struct {
	Program string
	Size    automaton.Size
	Stages  []StageReport
	// Census lists every non-empty state present after the run, in
	// ascending state order.
	Census []CensusEntry
}

// Changed sums the changed cells of all stages.
func (r Report) Changed() int {
	n := 0
	for _, st := range r.Stages {
		n += st.Changed
	}
	return n
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records per-generation metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithWorkers spreads each generation over n goroutines.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// Runner applies programs to grids.
type Runner struct {
	logger  *slog.Logger
	metrics *Metrics
	workers int
}

// NewRunner returns a serial Runner with the given options applied.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates p and then applies its stages to g in order. Nothing is
// applied when validation fails. ctx is checked between generations; on
// cancellation the grid keeps the generations already applied.
func (r *Runner) Run(ctx context.Context, g automaton.Grid, p Program) (Report, error) {
	report := Report{Program: p.Name, Size: g.Size()}
	if err := p.Validate(); err != nil {
		return report, err
	}

	r.logger.Info("program start",
		"program", p.Name,
		"topology", g.Topology(),
		"size", g.Size(),
		"stages", len(p.Stages),
		"generations", p.TotalGenerations(),
		"workers", r.workers)

	for _, st := range p.Stages {
		sr := StageReport{Name: st.Name}
		start := time.Now()
		for gen := 0; gen < st.Generations; gen++ {
			if err := ctx.Err(); err != nil {
				report.Stages = append(report.Stages, sr)
				return report, err
			}
			t0 := time.Now()
			changed := g.Step(st.Rule, r.workers)
			r.metrics.observe(p.Name, st.Name, changed, time.Since(t0).Seconds())
			sr.Generations++
			sr.Changed += changed
			r.logger.Debug("generation", "stage", st.Name, "generation", gen, "changed", changed)
		}
		sr.Elapsed = time.Since(start)
		report.Stages = append(report.Stages, sr)
		r.logger.Info("stage done",
			"stage", st.Name,
			"generations", sr.Generations,
			"changed", sr.Changed,
			"elapsed", sr.Elapsed)
	}

	report.Census = Census(g)
	r.logger.Info("program done", "program", p.Name, "changed", report.Changed(), "states", len(report.Census))
	return report, nil
}

// Census counts every non-empty state in g.
func Census(g automaton.Grid) []CensusEntry {
	counts := map[automaton.State]int{}
	g.Each(func(_, _, _ int, v automaton.State) {
		if v != automaton.Empty {
			counts[v]++
		}
	})
	out := make([]CensusEntry, 0, len(counts))
	for s, n := range counts {
		out = append(out, CensusEntry{State: s, Cells: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out
}
