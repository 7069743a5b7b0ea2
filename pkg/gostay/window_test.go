package gostay

import (
	"testing"
	"time"
)

func validRange(entry, exit time.Time) RangeResult {
	s := NewStay(entry, exit)
	return RangeResult{Stay: s, StayDays: s.Days()}
}

func TestMaxWindow_ExactBoundary(t *testing.T) {
	// 2024 is a leap year: Dec 30 is 364 day numbers after Jan 1 and still
	// fits a 365-day window; Dec 31 is 365 apart and does not.
	jan1 := Date(2024, time.January, 1)

	inside := []RangeResult{
		validRange(jan1, jan1),
		validRange(Date(2024, time.December, 30), Date(2024, time.December, 30)),
	}
	if got := maxWindow(inside, 365); got.Days != 2 {
		t.Errorf("Expected both days inside one window, got %d", got.Days)
	}

	outside := []RangeResult{
		validRange(jan1, jan1),
		validRange(Date(2024, time.December, 31), Date(2024, time.December, 31)),
	}
	got := maxWindow(outside, 365)
	if got.Days != 1 {
		t.Errorf("Expected the days to split across windows, got %d", got.Days)
	}
	if !got.Start.Equal(jan1) || !got.End.Equal(jan1) {
		t.Errorf("Expected the first singleton window to win, got %v..%v", got.Start, got.End)
	}
}

func TestMaxWindow_TieKeepsFirst(t *testing.T) {
	first := Date(2024, time.March, 1)
	second := Date(2026, time.March, 1)

	got := maxWindow([]RangeResult{
		validRange(first, first),
		validRange(second, second),
	}, 365)

	if got.Days != 1 {
		t.Fatalf("Expected window of 1 day, got %d", got.Days)
	}
	if !got.Start.Equal(first) {
		t.Errorf("Expected the earlier window on a tie, got start %v", got.Start)
	}
}

func TestMaxWindow_DuplicateDaysCountOnce(t *testing.T) {
	got := maxWindow([]RangeResult{
		validRange(Date(2024, time.May, 1), Date(2024, time.May, 10)),
		validRange(Date(2024, time.May, 1), Date(2024, time.May, 10)),
		validRange(Date(2024, time.May, 5), Date(2024, time.May, 5)),
	}, 365)

	if got.Days != 10 {
		t.Errorf("Expected 10 distinct days, got %d", got.Days)
	}
}

func TestMaxWindow_CustomWindowLength(t *testing.T) {
	// Days 1..5, 7 and 11 of June with a 7-day window: the best window is
	// Jun 1..7 holding six days.
	results := []RangeResult{
		validRange(Date(2024, time.June, 1), Date(2024, time.June, 5)),
		validRange(Date(2024, time.June, 7), Date(2024, time.June, 7)),
		validRange(Date(2024, time.June, 11), Date(2024, time.June, 11)),
	}

	got := maxWindow(results, 7)
	if got.Days != 6 {
		t.Errorf("Expected 6 days in a 7-day window, got %d", got.Days)
	}
	if !got.Start.Equal(Date(2024, time.June, 1)) || !got.End.Equal(Date(2024, time.June, 7)) {
		t.Errorf("Unexpected window bounds %v..%v", got.Start, got.End)
	}
}

func TestMaxWindow_IgnoresInvalidRanges(t *testing.T) {
	results := []RangeResult{
		{Stay: NewStay(Date(2024, time.May, 10), Date(2024, time.May, 1)), Err: ErrExitBeforeEntry},
		validRange(Date(2024, time.June, 1), Date(2024, time.June, 3)),
	}

	if got := maxWindow(results, 365); got.Days != 3 {
		t.Errorf("Expected 3 days from the valid range, got %d", got.Days)
	}
}

func TestMaxWindow_Empty(t *testing.T) {
	got := maxWindow(nil, 365)
	if got.Days != 0 || !got.Start.IsZero() || !got.End.IsZero() {
		t.Errorf("Expected the zero window, got %+v", got)
	}
}

func TestDayNumber_PreEpochDates(t *testing.T) {
	// Midnights divide the epoch exactly on both sides.
	a := Date(1969, time.December, 31)
	b := Date(1970, time.January, 1)
	if dayNumber(b)-dayNumber(a) != 1 {
		t.Errorf("Expected consecutive day numbers across the epoch, got %d and %d",
			dayNumber(a), dayNumber(b))
	}
}
