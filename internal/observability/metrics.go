package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the tracker pipeline.
type Metrics struct {
	PackagesConsumed  prometheus.Counter
	SummariesProduced prometheus.Counter
	TransformErrors   *prometheus.CounterVec // labels: reason={unknown_activity,argument_count,division_by_zero,other}
	PipelineRunning   prometheus.Gauge

	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		PackagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Name:      "packages_consumed_total",
			Help:      "Total sensor packages read from the source.",
		}),
		SummariesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Name:      "summaries_produced_total",
			Help:      "Total summary lines written to the output.",
		}),
		TransformErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Name:      "transform_errors_total",
			Help:      "Sensor packages rejected by the calculator, by reason.",
		}, []string{"reason"}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fitness_tracker",
			Name:      "pipeline_running",
			Help:      "1 while packages are being processed, 0 otherwise.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fitness_tracker",
			Name:      "batch_size",
			Help:      "Number of packages per batch extracted from the source.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fitness_tracker",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// NewMetrics creates and registers all pipeline metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.PackagesConsumed,
		m.SummariesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
