package gostay

import "fmt"

// validateRanges builds the per-range skeleton of a report: normalized
// stays, validity flags and inclusive lengths. A range whose exit precedes
// its entry is flagged and excluded from every aggregate; a range longer
// than the span cap rejects the whole call before any aggregation.
func (e *Engine) validateRanges(stays []Stay) ([]RangeResult, error) {
	results := make([]RangeResult, len(stays))
	for i, s := range stays {
		norm := NewStay(s.Entry, s.Exit)
		res := RangeResult{Index: i, Stay: norm}
		if norm.Exit.Before(norm.Entry) {
			res.Err = ErrExitBeforeEntry
			results[i] = res
			continue
		}
		res.StayDays = norm.Days()
		if res.StayDays > e.maxSpanDays {
			return nil, fmt.Errorf("%w: range %d spans %d days (max %d)",
				ErrStayTooLong, i, res.StayDays, e.maxSpanDays)
		}
		results[i] = res
	}
	return results, nil
}
