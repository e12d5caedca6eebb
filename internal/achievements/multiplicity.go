package achievements

import "time"

// DayCount is the number of workouts recorded on one calendar day.
type DayCount struct {
	Day   time.Time
	Count int
}

// AnalyzeDailyCounts groups the ascending workout-day list by calendar
// day and returns, in ascending day order, every day that saw two or more
// workouts. Single-workout days earn nothing and are omitted.
func AnalyzeDailyCounts(days []time.Time) []DayCount {
	var out []DayCount
	for _, day := range days {
		if len(out) > 0 && dayKey(out[len(out)-1].Day) == dayKey(day) {
			out[len(out)-1].Count++
			continue
		}
		out = append(out, DayCount{Day: day, Count: 1})
	}

	multi := out[:0]
	for _, dc := range out {
		if dc.Count >= 2 {
			multi = append(multi, dc)
		}
	}
	return multi
}
