package gostay

import "time"

// Metrics defines the interface for tracking evaluations and rule outcomes.
type Metrics interface {
	// RecordEvaluation records one evaluation: its duration, the number of
	// input ranges and how many of them were invalid.
	RecordEvaluation(duration time.Duration, ranges, invalid int)

	// RecordRuleBreach records a rule whose limit was exceeded (e.g. "visit",
	// "rolling").
	RecordRuleBreach(rule string)

	// RecordWarning records a warning threshold crossing for a rule.
	RecordWarning(rule string, threshold float64)

	// RecordRejectedInput records an evaluation rejected before aggregation
	// (too many ranges, oversized span).
	RecordRejectedInput(reason string)
}

// NoopMetrics is a no-op implementation of the Metrics interface.
type NoopMetrics struct{}

func (n *NoopMetrics) RecordEvaluation(duration time.Duration, ranges, invalid int) {}
func (n *NoopMetrics) RecordRuleBreach(rule string)                                 {}
func (n *NoopMetrics) RecordWarning(rule string, threshold float64)                 {}
func (n *NoopMetrics) RecordRejectedInput(reason string)                            {}
