package gostay

import (
	"sort"
	"time"
)

const secondsPerDay = 86400

// dayNumber converts a UTC midnight to an absolute day index. Midnights
// divide evenly, so the division is exact for dates on either side of the
// epoch.
func dayNumber(t time.Time) int64 {
	return t.Unix() / secondsPerDay
}

// maxWindow finds the rolling window of windowDays calendar days holding
// the most distinct present days. Valid ranges are expanded into their
// days, de-duplicated and sorted; a two-pointer sweep then sizes the
// window anchored at every present day. Two days fit one window when their
// day numbers differ by at most windowDays-1. The strictly-greater
// comparison keeps the first maximal window encountered.
func maxWindow(results []RangeResult, windowDays int) WindowResult {
	seen := make(map[time.Time]struct{})
	for _, r := range results {
		if !r.Valid() {
			continue
		}
		for d := r.Stay.Entry; !d.After(r.Stay.Exit); d = d.AddDate(0, 0, 1) {
			seen[d] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return WindowResult{}
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	span := int64(windowDays - 1)
	best, bestI, bestJ := 0, 0, 0
	j := 0
	for i := 0; i < len(days); i++ {
		for j < len(days) && dayNumber(days[j])-dayNumber(days[i]) <= span {
			j++
		}
		if j-i > best {
			best, bestI, bestJ = j-i, i, j-1
		}
	}

	return WindowResult{Days: best, Start: days[bestI], End: days[bestJ]}
}
