package achievements

import "time"

// StreakSummary describes the consecutive-day runs in a workout history.
// EndDate is the day on which the longest run last reached its maximum;
// it is zero when no day has been recorded.
type StreakSummary struct {
	Longest int       `json:"longest"`
	Current int       `json:"current"`
	EndDate time.Time `json:"end_date,omitzero"`
}

// AnalyzeStreak computes the longest and current run of consecutive
// workout days. Input is the ascending list of distinct workout days.
//
// The running counter resets to 1 whenever the gap to the previous day is
// not exactly one calendar day. EndDate updates whenever the counter
// strictly exceeds the best so far, so a lone first day (1 > 0) records
// itself.
func AnalyzeStreak(days []time.Time) StreakSummary {
	var s StreakSummary
	var prev time.Time
	for i, day := range days {
		if i == 0 || daysBetween(prev, day) != 1 {
			s.Current = 1
		} else {
			s.Current++
		}
		if s.Current > s.Longest {
			s.Longest = s.Current
			s.EndDate = day
		}
		prev = day
	}
	return s
}
