package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements gostay.Metrics using Prometheus.
type Metrics struct {
	evaluationsTotal    prometheus.Counter
	evaluationDuration  prometheus.Histogram
	rangesPerEvaluation prometheus.Histogram
	invalidRangesTotal  prometheus.Counter
	ruleBreachesTotal   *prometheus.CounterVec
	warningsTotal       *prometheus.CounterVec
	rejectedInputsTotal *prometheus.CounterVec
}

// NewMetrics creates a new Prometheus metrics implementation.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		evaluationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of completed itinerary evaluations.",
		}),

		evaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Latency of itinerary evaluations.",
			Buckets:   prometheus.DefBuckets,
		}),

		rangesPerEvaluation: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranges_per_evaluation",
			Help:      "Distribution of input range counts per evaluation.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}),

		invalidRangesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_ranges_total",
			Help:      "Total number of input ranges rejected by validation.",
		}),

		ruleBreachesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_breaches_total",
			Help:      "Total number of rule limits exceeded.",
		}, []string{"rule"}),

		warningsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Total number of warning thresholds crossed.",
		}, []string{"rule"}),

		rejectedInputsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_inputs_total",
			Help:      "Total number of evaluations rejected before aggregation.",
		}, []string{"reason"}),
	}
}

func (m *Metrics) RecordEvaluation(duration time.Duration, ranges, invalid int) {
	m.evaluationsTotal.Inc()
	m.evaluationDuration.Observe(duration.Seconds())
	m.rangesPerEvaluation.Observe(float64(ranges))
	if invalid > 0 {
		m.invalidRangesTotal.Add(float64(invalid))
	}
}

func (m *Metrics) RecordRuleBreach(rule string) {
	m.ruleBreachesTotal.WithLabelValues(rule).Inc()
}

func (m *Metrics) RecordWarning(rule string, _ float64) {
	m.warningsTotal.WithLabelValues(rule).Inc()
}

func (m *Metrics) RecordRejectedInput(reason string) {
	m.rejectedInputsTotal.WithLabelValues(reason).Inc()
}

// DefaultMetrics returns a Metrics implementation using the default Prometheus registerer.
func DefaultMetrics(namespace string) *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer, namespace)
}
