package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects per-generation counters for a Runner.
type Metrics struct {
	generations *prometheus.CounterVec
	changed     *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics registers the runner collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "voxca_generations_total",
			Help: "Generations applied, by program and stage",
		}, []string{"program", "stage"}),
		changed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "voxca_cells_changed_total",
			Help: "Cells whose value changed, by program and stage",
		}, []string{"program", "stage"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "voxca_generation_duration_seconds",
			Help:    "Wall time of a single generation",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
}

func (m *Metrics) observe(program, stage string, changed int, seconds float64) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(program, stage).Inc()
	m.changed.WithLabelValues(program, stage).Add(float64(changed))
	m.duration.Observe(seconds)
}
