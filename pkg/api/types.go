package api

import (
	"fmt"

	"github.com/nmoriya/gostay/pkg/gostay"
)

// DateRange is one entry/exit pair in the wire format ("2006-01-02").
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EvaluateRequest is the body of the evaluate endpoint.
type EvaluateRequest struct {
	Ranges []DateRange `json:"ranges"`

	// Year is the target calendar year; 0 or omitted means the current year.
	Year int `json:"year"`

	// AnnualLimit and RollingLimit are optional caller-supplied checks;
	// 0 or omitted means the check is not applied.
	AnnualLimit  int `json:"annual_limit"`
	RollingLimit int `json:"rolling_limit"`
}

// Validate rejects request values the engine would silently misread.
func (r *EvaluateRequest) Validate() error {
	if r.Year < 0 {
		return fmt.Errorf("year cannot be negative")
	}
	if r.AnnualLimit < 0 {
		return fmt.Errorf("annual_limit cannot be negative")
	}
	if r.RollingLimit < 0 {
		return fmt.Errorf("rolling_limit cannot be negative")
	}
	return nil
}

// Stays converts the raw ranges into engine inputs, failing on the first
// malformed date. Ranges whose exit precedes their entry pass through
// unchanged; the engine flags those per range instead of rejecting the call.
func (r *EvaluateRequest) Stays() ([]gostay.Stay, error) {
	stays := make([]gostay.Stay, 0, len(r.Ranges))
	for i, dr := range r.Ranges {
		entry, err := gostay.ParseDate(dr.Start)
		if err != nil {
			return nil, fmt.Errorf("range %d: start: %w", i, err)
		}
		exit, err := gostay.ParseDate(dr.End)
		if err != nil {
			return nil, fmt.Errorf("range %d: end: %w", i, err)
		}
		stays = append(stays, gostay.Stay{Entry: entry, Exit: exit})
	}
	return stays, nil
}

// Options returns the per-evaluation options implied by the optional limits.
func (r *EvaluateRequest) Options() []gostay.EvaluateOption {
	var opts []gostay.EvaluateOption
	if r.AnnualLimit > 0 {
		opts = append(opts, gostay.WithAnnualLimit(r.AnnualLimit))
	}
	if r.RollingLimit > 0 {
		opts = append(opts, gostay.WithRollingLimit(r.RollingLimit))
	}
	return opts
}

// RangeReport is the per-range part of the response, in input order.
type RangeReport struct {
	Index      int    `json:"index"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Error      string `json:"error,omitempty"`
	StayDays   int    `json:"stay_days"`
	DaysInYear int    `json:"days_in_year"`
}

// WindowReport describes the maximal rolling window. Start and End are
// omitted when no day is covered.
type WindowReport struct {
	Days  int    `json:"days"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// RuleCheckReport is the outcome of one limit comparison.
type RuleCheckReport struct {
	Limit    int  `json:"limit"`
	Days     int  `json:"days"`
	Exceeded bool `json:"exceeded"`
}

// EvaluateResponse is the full report DTO.
type EvaluateResponse struct {
	Year         int              `json:"year"`
	Ranges       []RangeReport    `json:"ranges"`
	DaysInYear   int              `json:"days_in_year"`
	LongestStay  int              `json:"longest_stay"`
	Window       WindowReport     `json:"window"`
	VisitRule    RuleCheckReport  `json:"visit_rule"`
	RollingRule  RuleCheckReport  `json:"rolling_rule"`
	AnnualLimit  *RuleCheckReport `json:"annual_limit,omitempty"`
	RollingLimit *RuleCheckReport `json:"rolling_limit,omitempty"`
}

// RulesResponse describes the engine's rule set and the handler's year bounds.
type RulesResponse struct {
	VisitLimit        int       `json:"visit_limit"`
	RollingLimit      int       `json:"rolling_limit"`
	WindowDays        int       `json:"window_days"`
	WarningThresholds []float64 `json:"warning_thresholds,omitempty"`
	MinYear           int       `json:"min_year"`
	MaxYear           int       `json:"max_year"`
}

// NewEvaluateResponse converts an engine report into its response DTO.
func NewEvaluateResponse(report *gostay.Report) EvaluateResponse {
	resp := EvaluateResponse{
		Year:        report.Year,
		Ranges:      make([]RangeReport, 0, len(report.Ranges)),
		DaysInYear:  report.DaysInYear,
		LongestStay: report.LongestStay,
		Window:      WindowReport{Days: report.Window.Days},
		VisitRule:   newRuleCheckReport(report.VisitRule),
		RollingRule: newRuleCheckReport(report.RollingRule),
	}
	for _, rr := range report.Ranges {
		rep := RangeReport{
			Index:      rr.Index,
			Start:      gostay.FormatDate(rr.Stay.Entry),
			End:        gostay.FormatDate(rr.Stay.Exit),
			StayDays:   rr.StayDays,
			DaysInYear: rr.DaysInYear,
		}
		if rr.Err != nil {
			rep.Error = rr.Err.Error()
		}
		resp.Ranges = append(resp.Ranges, rep)
	}
	if report.Window.Days > 0 {
		resp.Window.Start = gostay.FormatDate(report.Window.Start)
		resp.Window.End = gostay.FormatDate(report.Window.End)
	}
	if report.AnnualLimit != nil {
		check := newRuleCheckReport(*report.AnnualLimit)
		resp.AnnualLimit = &check
	}
	if report.RollingLimit != nil {
		check := newRuleCheckReport(*report.RollingLimit)
		resp.RollingLimit = &check
	}
	return resp
}

func newRuleCheckReport(check gostay.RuleCheck) RuleCheckReport {
	return RuleCheckReport{Limit: check.Limit, Days: check.Days, Exceeded: check.Exceeded}
}
