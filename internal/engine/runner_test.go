package engine

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxel-ca/pkg/automaton"
)

func towerProgram() Program {
	return Program{
		Name: "tower",
		Stages: []Stage{
			{Name: "footprint", Rule: automaton.NewBuildBox(1, 1, 1, 0, 2, 2, 1), Generations: 1},
			{Name: "extrude", Rule: automaton.NewKeep([]automaton.State{1}, automaton.CopyLowerFloor{}), Generations: 3},
			{Name: "roof", Rule: automaton.NewTargetFloor(3, automaton.NewReplace(1, 2)), Generations: 1},
		},
	}
}

func TestRunAppliesStagesInOrder(t *testing.T) {
	g, err := automaton.NewOrthoGrid(4, 4, 4)
	require.NoError(t, err)

	report, err := NewRunner().Run(context.Background(), g, towerProgram())
	require.NoError(t, err)

	require.Len(t, report.Stages, 3)
	assert.Equal(t, 4, report.Stages[0].Changed)
	assert.Equal(t, 3, report.Stages[1].Generations)
	assert.Equal(t, 12, report.Stages[1].Changed)
	assert.Equal(t, 4, report.Stages[2].Changed)
	assert.Equal(t, 20, report.Changed())

	assert.Equal(t, []CensusEntry{{State: 1, Cells: 12}, {State: 2, Cells: 4}}, report.Census)
	assert.Equal(t, automaton.Size{X: 4, Y: 4, Z: 4}, report.Size)
}

func TestRunRejectsMalformedProgramBeforeApplying(t *testing.T) {
	g, err := automaton.NewOrthoGrid(3, 3, 3)
	require.NoError(t, err)

	p := towerProgram()
	p.Stages = append(p.Stages, Stage{Name: "broken", Rule: &automaton.Or{}, Generations: 1})

	_, err = NewRunner().Run(context.Background(), g, p)
	require.ErrorIs(t, err, automaton.ErrMalformedRule)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, 27, g.Count(automaton.Empty), "grid must be untouched")

	p = Program{Stages: []Stage{{Name: "neg", Rule: automaton.NewConst(1), Generations: -1}}}
	_, err = NewRunner().Run(context.Background(), g, p)
	assert.Error(t, err)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	g, err := automaton.NewOrthoGrid(2, 2, 2)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewRunner().Run(ctx, g, towerProgram())
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, report.Stages, 1)
	assert.Zero(t, report.Stages[0].Generations)
	assert.Equal(t, 8, g.Count(automaton.Empty))
}

func TestRunRecordsMetricsAndLogs(t *testing.T) {
	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	g, err := automaton.NewHexGrid(4, 4, 4)
	require.NoError(t, err)
	r := NewRunner(WithLogger(logger), WithMetrics(NewMetrics(reg)), WithWorkers(2))
	_, err = r.Run(context.Background(), g, towerProgram())
	require.NoError(t, err)

	m := r.metrics
	assert.Equal(t, 3.0, testutil.ToFloat64(m.generations.WithLabelValues("tower", "extrude")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.changed.WithLabelValues("tower", "extrude")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	out := buf.String()
	assert.Contains(t, out, "program start")
	assert.Contains(t, out, "stage=extrude")
	assert.Contains(t, out, "program done")
}

func TestCensusSkipsEmpty(t *testing.T) {
	g, err := automaton.NewOrthoGrid(3, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetValue(0, 0, 0, 5))
	require.NoError(t, g.SetValue(2, 0, 0, -7))
	assert.Equal(t, []CensusEntry{{State: -7, Cells: 1}, {State: 5, Cells: 1}}, Census(g))
}
