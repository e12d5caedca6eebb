package achievements

import (
	"testing"
	"time"
)

func TestAnalyzeDailyCounts_SingleWorkoutDaysOmitted(t *testing.T) {
	days := []time.Time{
		day(2025, time.June, 1),
		day(2025, time.June, 2),
		day(2025, time.June, 3),
	}

	if got := AnalyzeDailyCounts(days); len(got) != 0 {
		t.Errorf("expected no multi-workout days, got %d", len(got))
	}
}

func TestAnalyzeDailyCounts_CountsPerDay(t *testing.T) {
	days := []time.Time{
		day(2025, time.June, 1),
		day(2025, time.June, 1),
		day(2025, time.June, 2),
		day(2025, time.June, 3),
		day(2025, time.June, 3),
		day(2025, time.June, 3),
		day(2025, time.June, 3),
	}

	got := AnalyzeDailyCounts(days)
	if len(got) != 2 {
		t.Fatalf("expected 2 multi-workout days, got %d", len(got))
	}

	if !got[0].Day.Equal(day(2025, time.June, 1)) || got[0].Count != 2 {
		t.Errorf("expected June 1 x2, got %v x%d", got[0].Day, got[0].Count)
	}
	if !got[1].Day.Equal(day(2025, time.June, 3)) || got[1].Count != 4 {
		t.Errorf("expected June 3 x4, got %v x%d", got[1].Day, got[1].Count)
	}
}

func TestAnalyzeDailyCounts_AscendingOrder(t *testing.T) {
	var days []time.Time
	for d := 1; d <= 5; d++ {
		days = append(days, day(2025, time.June, d), day(2025, time.June, d))
	}

	got := AnalyzeDailyCounts(days)
	if len(got) != 5 {
		t.Fatalf("expected 5 days, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Day.Before(got[i].Day) {
			t.Errorf("days out of order at %d: %v >= %v", i, got[i-1].Day, got[i].Day)
		}
	}
}
