package gostay

import "context"

// Rule names used in warnings, breaches and metric labels.
const (
	RuleVisit        = "visit"
	RuleRolling      = "rolling"
	RuleAnnualLimit  = "annual_limit"
	RuleRollingLimit = "rolling_limit"
)

// Warning describes a rule whose measured days crossed a configured
// warning threshold without exceeding the limit itself.
type Warning struct {
	// Rule is one of the Rule* constants.
	Rule string

	// Threshold is the highest crossed fraction from
	// RuleSet.WarningThresholds.
	Threshold float64

	// Days is the measured day count for the rule.
	Days int

	// Limit is the rule's limit.
	Limit int
}

// WarningHandler is the interface for handling threshold warnings.
type WarningHandler interface {
	OnWarning(ctx context.Context, warning *Warning)
}

// NoopWarningHandler ignores all warnings.
type NoopWarningHandler struct{}

func (n *NoopWarningHandler) OnWarning(ctx context.Context, warning *Warning) {}

// highestCrossed returns the largest threshold in thresholds that days has
// reached relative to limit, or 0 if none. Thresholds are validated to be
// ascending, so the scan keeps the last hit.
func highestCrossed(thresholds []float64, days, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	crossed := 0.0
	for _, th := range thresholds {
		if float64(days) >= th*float64(limit) {
			crossed = th
		}
	}
	return crossed
}
