package gostay

import "time"

// Stay represents one travel range: entry and exit calendar days, both
// inclusive. A one-day visit has Entry == Exit.
type Stay struct {
	Entry time.Time `json:"entry"`
	Exit  time.Time `json:"exit"`
}

// NewStay builds a Stay with both endpoints normalized to UTC midnight.
func NewStay(entry, exit time.Time) Stay {
	return Stay{Entry: Day(entry), Exit: Day(exit)}
}

// Days returns the inclusive length of the stay. A stay whose Exit is
// before its Entry has length 0.
func (s Stay) Days() int {
	return DaysBetween(s.Entry, s.Exit)
}

// Contains reports whether day falls inside the stay, endpoints included.
func (s Stay) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(s.Entry)) && !d.After(Day(s.Exit))
}

// RuleSet defines the thresholds a report is checked against.
type RuleSet struct {
	// VisitLimit is the maximum allowed length of a single stay, in days.
	VisitLimit int

	// RollingLimit is the maximum allowed number of days present inside
	// any rolling window of WindowDays days.
	RollingLimit int

	// WindowDays is the length of the rolling window in days. A 365-day
	// window covers day pairs at most 364 day numbers apart.
	WindowDays int

	// WarningThresholds lists fractions of a limit (e.g. 0.5, 0.8) that
	// trigger the WarningHandler before the limit itself is reached.
	// Must be in (0, 1] and strictly ascending.
	WarningThresholds []float64
}

// Default thresholds: the common short-stay regime of 90 days per visit and
// 180 days inside any 365-day window.
const (
	DefaultVisitLimit   = 90
	DefaultRollingLimit = 180
	DefaultWindowDays   = 365
)

// Input caps. Evaluations beyond these bounds are rejected outright so a
// hostile itinerary cannot force an unbounded day expansion.
const (
	DefaultMaxRanges   = 1000
	DefaultMaxSpanDays = 36500
)

// DefaultRules returns the default rule set.
func DefaultRules() RuleSet {
	return RuleSet{
		VisitLimit:   DefaultVisitLimit,
		RollingLimit: DefaultRollingLimit,
		WindowDays:   DefaultWindowDays,
	}
}

// RangeResult is the per-range outcome of an evaluation. Results keep
// their input position in Index, whatever the date order.
type RangeResult struct {
	Index int

	// Stay is the normalized input range.
	Stay Stay

	// Err is ErrExitBeforeEntry for ranges that failed validation, nil
	// otherwise. Invalid ranges contribute zero days everywhere and never
	// abort the evaluation.
	Err error

	// StayDays is the inclusive length of the range.
	StayDays int

	// DaysInYear is the part of the range falling inside the target year.
	DaysInYear int
}

// Valid reports whether the range passed validation.
func (r RangeResult) Valid() bool { return r.Err == nil }

// WindowResult describes the rolling window containing the most days.
type WindowResult struct {
	// Days is the number of distinct present days inside the window.
	Days int

	// Start and End are the first and last present days of the maximal
	// window. Both are zero times when Days is 0.
	Start time.Time
	End   time.Time
}

// RuleCheck is the outcome of comparing a measured day count to a limit.
type RuleCheck struct {
	Limit    int
	Days     int
	Exceeded bool
}

// Report is the complete outcome of one evaluation.
type Report struct {
	// Year is the target calendar year.
	Year int

	// Ranges holds one result per input range, in input order.
	Ranges []RangeResult

	// DaysInYear is the total of per-range days inside the target year.
	// Overlapping ranges count separately here; only the rolling window
	// de-duplicates days.
	DaysInYear int

	// LongestStay is the length of the longest single valid range.
	LongestStay int

	// Window is the maximal rolling window over all valid ranges.
	Window WindowResult

	// VisitRule compares LongestStay against RuleSet.VisitLimit.
	VisitRule RuleCheck

	// RollingRule compares Window.Days against RuleSet.RollingLimit.
	RollingRule RuleCheck

	// AnnualLimit is set only when the evaluation ran with WithAnnualLimit.
	AnnualLimit *RuleCheck

	// RollingLimit is set only when the evaluation ran with WithRollingLimit.
	RollingLimit *RuleCheck
}

// InvalidRanges returns how many input ranges failed validation.
func (r *Report) InvalidRanges() int {
	n := 0
	for _, rr := range r.Ranges {
		if !rr.Valid() {
			n++
		}
	}
	return n
}

// EvaluateOption represents an option for the Evaluate operation.
type EvaluateOption func(*EvaluateOptions)

// EvaluateOptions holds options for the Evaluate operation.
type EvaluateOptions struct {
	AnnualLimit  int
	RollingLimit int
}

// WithAnnualLimit adds a caller-supplied annual day limit check to the
// report.
func WithAnnualLimit(limit int) EvaluateOption {
	return func(opts *EvaluateOptions) {
		opts.AnnualLimit = limit
	}
}

// WithRollingLimit adds a caller-supplied rolling-window day limit check to
// the report.
func WithRollingLimit(limit int) EvaluateOption {
	return func(opts *EvaluateOptions) {
		opts.RollingLimit = limit
	}
}
