package gostay

// clipToYear fills DaysInYear for every valid range and returns the total.
// Each range is clamped to [Jan 1, Dec 31] of the target year; an empty
// clamp contributes zero. Days are attributed per range, so overlapping
// ranges each count their own days here.
func clipToYear(results []RangeResult, year int) int {
	yearStart, yearEnd := yearBounds(year)
	total := 0
	for i := range results {
		if !results[i].Valid() {
			continue
		}
		start := maxDay(results[i].Stay.Entry, yearStart)
		end := minDay(results[i].Stay.Exit, yearEnd)
		if end.Before(start) {
			continue
		}
		days := DaysBetween(start, end)
		results[i].DaysInYear = days
		total += days
	}
	return total
}
