// Package achievements derives trophies from a workout history and keeps
// the persisted trophy set in sync with it.
//
// The pipeline is deterministic: the same history always produces the
// same result, so recomputing after every workout mutation is cheap and
// reconciliation is idempotent.
package achievements

import (
	"context"
	"log"
	"time"

	"github.com/strideapp/stride-api/internal/trophy"
)

// WorkoutSource yields a user's workout days, one entry per workout,
// ascending. Days are start-of-day timestamps.
type WorkoutSource interface {
	WorkoutDays(ctx context.Context, userID uint) ([]time.Time, error)
}

// Calculator turns a workout history into the set of earned trophies.
type Calculator struct {
	workouts WorkoutSource
}

func NewCalculator(workouts WorkoutSource) *Calculator {
	return &Calculator{workouts: workouts}
}

// Calculate fetches the user's full history and derives every earned
// trophy. A failed fetch is logged and yields an empty result: trophies
// silently disappear for one pass rather than surfacing an error to the
// client.
func (c *Calculator) Calculate(ctx context.Context, userID uint) Result {
	res := emptyResult()

	days, err := c.workouts.WorkoutDays(ctx, userID)
	if err != nil {
		log.Printf("achievements: workout fetch failed for user %d: %v", userID, err)
		return res
	}
	if len(days) == 0 {
		return res
	}

	first := days[0]
	latest := days[len(days)-1]

	res.add(Record{Type: trophy.Newbie, Day: first})

	streak := AnalyzeStreak(DistinctDays(days))
	for _, th := range trophy.StreakThresholds {
		if streak.Longest >= th.Days {
			// every milestone reached in one pass is dated to the
			// latest workout day, not the day the run completed
			res.add(Record{Type: th.Type, Day: latest})
		}
	}

	for _, week := range AnalyzePerfectWeeks(days) {
		typ, ok := trophy.ForPerfectWeekOrdinal(week.Ordinal)
		if !ok {
			break
		}
		res.add(Record{Type: typ, Day: week.EndDate})
	}

	for _, dc := range AnalyzeDailyCounts(days) {
		res.add(Record{Type: trophy.TwoInADay, Day: dc.Day})
		if dc.Count >= 3 {
			res.add(Record{Type: trophy.ThreeInADay, Day: dc.Day})
		}
		if dc.Count >= 4 {
			res.add(Record{Type: trophy.LotsInADay, Day: dc.Day})
		}
	}

	return res
}
