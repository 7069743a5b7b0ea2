package gostay

import (
	"context"
	"fmt"
	"time"
)

// Engine evaluates travel itineraries against a rule set. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	rules          RuleSet
	maxRanges      int
	maxSpanDays    int
	logger         Logger
	metrics        Metrics
	warningHandler WarningHandler
	clock          Clock
}

// New creates an engine with the given configuration
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Set defaults
	if config.Rules.VisitLimit == 0 {
		config.Rules.VisitLimit = DefaultVisitLimit
	}
	if config.Rules.RollingLimit == 0 {
		config.Rules.RollingLimit = DefaultRollingLimit
	}
	if config.Rules.WindowDays == 0 {
		config.Rules.WindowDays = DefaultWindowDays
	}
	if config.MaxRanges == 0 {
		config.MaxRanges = DefaultMaxRanges
	}
	if config.MaxSpanDays == 0 {
		config.MaxSpanDays = DefaultMaxSpanDays
	}
	if config.Logger == nil {
		config.Logger = &NoopLogger{}
	}
	if config.Metrics == nil {
		config.Metrics = &NoopMetrics{}
	}
	if config.WarningHandler == nil {
		config.WarningHandler = &NoopWarningHandler{}
	}
	if config.Clock == nil {
		config.Clock = systemClock{}
	}

	return &Engine{
		rules:          config.Rules,
		maxRanges:      config.MaxRanges,
		maxSpanDays:    config.MaxSpanDays,
		logger:         config.Logger,
		metrics:        config.Metrics,
		warningHandler: config.WarningHandler,
		clock:          config.Clock,
	}, nil
}

// Rules returns the rule set the engine was built with, defaults applied.
func (e *Engine) Rules() RuleSet {
	return e.rules
}

// CurrentYear returns the clock's current calendar year.
func (e *Engine) CurrentYear() int {
	return e.clock.Now().UTC().Year()
}

// Evaluate computes the stay report for one itinerary against a target
// year. Ranges may overlap, repeat and arrive in any order; a range whose
// exit precedes its entry is flagged in the report and excluded from the
// aggregates instead of failing the call. The result is deterministic for
// a given input.
func (e *Engine) Evaluate(ctx context.Context, stays []Stay, year int, opts ...EvaluateOption) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()

	options := EvaluateOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if len(stays) > e.maxRanges {
		e.metrics.RecordRejectedInput("too_many_ranges")
		return nil, fmt.Errorf("%w: %d ranges (max %d)", ErrTooManyRanges, len(stays), e.maxRanges)
	}

	results, err := e.validateRanges(stays)
	if err != nil {
		e.metrics.RecordRejectedInput("span_too_long")
		return nil, err
	}

	report := &Report{
		Year:   year,
		Ranges: results,
	}
	report.DaysInYear = clipToYear(results, year)
	for _, r := range results {
		if r.Valid() && r.StayDays > report.LongestStay {
			report.LongestStay = r.StayDays
		}
	}
	report.Window = maxWindow(results, e.rules.WindowDays)

	report.VisitRule = newCheck(e.rules.VisitLimit, report.LongestStay)
	report.RollingRule = newCheck(e.rules.RollingLimit, report.Window.Days)
	e.checkRule(ctx, RuleVisit, report.VisitRule)
	e.checkRule(ctx, RuleRolling, report.RollingRule)

	if options.AnnualLimit > 0 {
		check := newCheck(options.AnnualLimit, report.DaysInYear)
		report.AnnualLimit = &check
		e.checkRule(ctx, RuleAnnualLimit, check)
	}
	if options.RollingLimit > 0 {
		check := newCheck(options.RollingLimit, report.Window.Days)
		report.RollingLimit = &check
		e.checkRule(ctx, RuleRollingLimit, check)
	}

	invalid := report.InvalidRanges()
	if invalid > 0 {
		e.logger.Warn("itinerary contains invalid ranges",
			Field{Key: "invalid", Value: invalid},
			Field{Key: "ranges", Value: len(stays)})
	}
	e.logger.Debug("evaluated itinerary",
		Field{Key: "year", Value: year},
		Field{Key: "ranges", Value: len(stays)},
		Field{Key: "days_in_year", Value: report.DaysInYear},
		Field{Key: "window_days", Value: report.Window.Days})
	e.metrics.RecordEvaluation(time.Since(started), len(stays), invalid)

	return report, nil
}

func newCheck(limit, days int) RuleCheck {
	return RuleCheck{Limit: limit, Days: days, Exceeded: days > limit}
}

// checkRule records a breach, or fires the highest crossed warning
// threshold when the rule still holds.
func (e *Engine) checkRule(ctx context.Context, rule string, check RuleCheck) {
	if check.Exceeded {
		e.logger.Info("rule limit exceeded",
			Field{Key: "rule", Value: rule},
			Field{Key: "days", Value: check.Days},
			Field{Key: "limit", Value: check.Limit})
		e.metrics.RecordRuleBreach(rule)
		return
	}
	th := highestCrossed(e.rules.WarningThresholds, check.Days, check.Limit)
	if th == 0 {
		return
	}
	e.metrics.RecordWarning(rule, th)
	e.warningHandler.OnWarning(ctx, &Warning{
		Rule:      rule,
		Threshold: th,
		Days:      check.Days,
		Limit:     check.Limit,
	})
}
