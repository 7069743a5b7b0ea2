package gostay

import "fmt"

// Config holds engine configuration.
type Config struct {
	// Rules are the thresholds reports are checked against. Zero-valued
	// fields fall back to the DefaultRules values.
	Rules RuleSet

	// MaxRanges caps the number of input ranges per evaluation
	// (default: DefaultMaxRanges).
	MaxRanges int

	// MaxSpanDays caps the length of a single range in days
	// (default: DefaultMaxSpanDays).
	MaxSpanDays int

	// Logger is used for structured logging (default: NoopLogger).
	Logger Logger

	// Metrics is used for tracking evaluations (default: NoopMetrics).
	Metrics Metrics

	// WarningHandler is called when a warning threshold is crossed (optional).
	WarningHandler WarningHandler

	// Clock supplies the current time for CurrentYear (default: system clock).
	Clock Clock
}

// Validate checks the configuration for values the engine cannot work with.
// Zero values are legal everywhere and mean "use the default".
func (c *Config) Validate() error {
	if c.Rules.VisitLimit < 0 {
		return fmt.Errorf("rules: visitLimit cannot be negative, got %d", c.Rules.VisitLimit)
	}
	if c.Rules.RollingLimit < 0 {
		return fmt.Errorf("rules: rollingLimit cannot be negative, got %d", c.Rules.RollingLimit)
	}
	if c.Rules.WindowDays < 0 {
		return fmt.Errorf("rules: windowDays cannot be negative, got %d", c.Rules.WindowDays)
	}
	prev := 0.0
	for _, th := range c.Rules.WarningThresholds {
		if th <= 0 || th > 1 {
			return fmt.Errorf("rules: warning threshold %v out of range (0, 1]", th)
		}
		if th <= prev {
			return fmt.Errorf("rules: warning thresholds must be strictly ascending")
		}
		prev = th
	}
	if c.MaxRanges < 0 {
		return fmt.Errorf("maxRanges cannot be negative, got %d", c.MaxRanges)
	}
	if c.MaxSpanDays < 0 {
		return fmt.Errorf("maxSpanDays cannot be negative, got %d", c.MaxSpanDays)
	}
	return nil
}
