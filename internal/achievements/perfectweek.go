package achievements

import (
	"sort"
	"time"
)

// PerfectWeek is one Monday-start week with at least one workout on every
// one of its seven days. Ordinal counts qualifying weeks chronologically
// starting at 1; EndDate is the latest workout day within the week.
type PerfectWeek struct {
	Ordinal int
	EndDate time.Time
}

type weekKey struct {
	year int // the ISO year that owns the week, not the calendar year
	week int
}

type weekGroup struct {
	weekdays map[time.Weekday]bool
	latest   time.Time
}

// AnalyzePerfectWeeks scans the full ascending workout-day list and
// returns every perfect week in chronological order.
func AnalyzePerfectWeeks(days []time.Time) []PerfectWeek {
	groups := map[weekKey]*weekGroup{}
	for _, day := range days {
		y, w := day.ISOWeek()
		key := weekKey{y, w}
		g, ok := groups[key]
		if !ok {
			g = &weekGroup{weekdays: map[time.Weekday]bool{}}
			groups[key] = g
		}
		g.weekdays[day.Weekday()] = true
		// days are ascending, so the last one seen is the latest
		g.latest = day
	}

	var keys []weekKey
	for key, g := range groups {
		if len(g.weekdays) == 7 {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	weeks := make([]PerfectWeek, 0, len(keys))
	for i, key := range keys {
		weeks = append(weeks, PerfectWeek{Ordinal: i + 1, EndDate: groups[key].latest})
	}
	return weeks
}
