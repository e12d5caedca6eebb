package achievements

import "time"

// DayOf truncates t to the start of its calendar day in loc. Workout rows
// are stored this way, so the rest of the package can treat days as plain
// values.
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// dayKey is the timezone-independent identity of a calendar day, used for
// grouping and set comparison. Comparing time.Time values directly is
// unreliable after a database round trip (location and monotonic clock
// differ), the civil date is what matters.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// daysBetween returns the whole calendar days from a to b. Both are
// reduced to their civil date first, so the result is stable across
// daylight-saving transitions.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// DistinctDays deduplicates an ascending list of day timestamps.
func DistinctDays(days []time.Time) []time.Time {
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		if len(out) > 0 && dayKey(out[len(out)-1]) == dayKey(d) {
			continue
		}
		out = append(out, d)
	}
	return out
}
