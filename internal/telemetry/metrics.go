package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"benchscore/internal/benchmark"
)

// ScoreMetrics exposes benchmark results as Prometheus gauges on a private
// registry, so repeated sessions in one process never collide.
type ScoreMetrics struct {
	registry  *prometheus.Registry
	score     *prometheus.GaugeVec
	runs      *prometheus.GaugeVec
	elapsed   *prometheus.GaugeVec
	aggregate prometheus.Gauge
}

// NewScoreMetrics creates and registers the score gauges. Every series
// carries the session ID as a constant label.
func NewScoreMetrics(sessionID string) *ScoreMetrics {
	labels := prometheus.Labels{"session": sessionID}
	m := &ScoreMetrics{registry: prometheus.NewRegistry()}

	m.score = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "benchscore_score",
			Help:        "Score of each benchmark relative to its reference time",
			ConstLabels: labels,
		},
		[]string{"benchmark"},
	)
	m.runs = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "benchscore_runs",
			Help:        "Timed iterations of each benchmark",
			ConstLabels: labels,
		},
		[]string{"benchmark"},
	)
	m.elapsed = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "benchscore_elapsed_microseconds",
			Help:        "Total timed duration of each benchmark in microseconds",
			ConstLabels: labels,
		},
		[]string{"benchmark"},
	)
	m.aggregate = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:        "benchscore_aggregate_score",
			Help:        "Geometric mean of all benchmark scores",
			ConstLabels: labels,
		},
	)

	m.registry.MustRegister(m.score, m.runs, m.elapsed, m.aggregate)
	return m
}

// ObserveResult implements benchmark.Observer.
func (m *ScoreMetrics) ObserveResult(r benchmark.Result) {
	m.score.WithLabelValues(r.Name).Set(r.Score)
	m.runs.WithLabelValues(r.Name).Set(float64(r.Runs))
	m.elapsed.WithLabelValues(r.Name).Set(float64(r.ElapsedUs))
}

// ObserveAggregate implements benchmark.Observer.
func (m *ScoreMetrics) ObserveAggregate(score float64) {
	m.aggregate.Set(score)
}

// Gatherer returns the private registry.
func (m *ScoreMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all gauges in the Prometheus text format, suitable
// for the node exporter's textfile collector.
func (m *ScoreMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
