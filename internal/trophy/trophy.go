// Package trophy defines the closed set of trophies a user can earn and
// their display metadata.
package trophy

import "fmt"

// Type identifies one trophy variant. The numeric value is the persisted
// identity of the variant: it is written to achievement rows and must
// never be changed or reused. New variants get the next free value,
// appended at the end of the catalog.
type Type int

const (
	Newbie Type = 0

	Streak5   Type = 1
	Streak10  Type = 2
	Streak25  Type = 3
	Streak50  Type = 4
	Streak100 Type = 5
	Streak200 Type = 6

	PerfectWeek1 Type = 7
	PerfectWeek2 Type = 8
	PerfectWeek3 Type = 9
	PerfectWeek4 Type = 10
	PerfectWeek5 Type = 11
	PerfectWeek6 Type = 12
	PerfectWeek7 Type = 13

	TwoInADay   Type = 14
	ThreeInADay Type = 15
	LotsInADay  Type = 16
)

// Info is the presentation record for a trophy variant. Asset names the
// 3D model shown by the client's trophy viewer.
type Info struct {
	Type  Type   `json:"type"`
	Name  string `json:"name"`
	Asset string `json:"asset"`
}

// All lists every variant in catalog order.
var All = []Type{
	Newbie,
	Streak5, Streak10, Streak25, Streak50, Streak100, Streak200,
	PerfectWeek1, PerfectWeek2, PerfectWeek3, PerfectWeek4,
	PerfectWeek5, PerfectWeek6, PerfectWeek7,
	TwoInADay, ThreeInADay, LotsInADay,
}

var catalog = map[Type]Info{
	Newbie:       {Newbie, "First Workout", "trophy_newbie"},
	Streak5:      {Streak5, "5-Day Streak", "trophy_streak_5"},
	Streak10:     {Streak10, "10-Day Streak", "trophy_streak_10"},
	Streak25:     {Streak25, "25-Day Streak", "trophy_streak_25"},
	Streak50:     {Streak50, "50-Day Streak", "trophy_streak_50"},
	Streak100:    {Streak100, "100-Day Streak", "trophy_streak_100"},
	Streak200:    {Streak200, "200-Day Streak", "trophy_streak_200"},
	PerfectWeek1: {PerfectWeek1, "1st Perfect Week", "trophy_week_1"},
	PerfectWeek2: {PerfectWeek2, "2nd Perfect Week", "trophy_week_2"},
	PerfectWeek3: {PerfectWeek3, "3rd Perfect Week", "trophy_week_3"},
	PerfectWeek4: {PerfectWeek4, "4th Perfect Week", "trophy_week_4"},
	PerfectWeek5: {PerfectWeek5, "5th Perfect Week", "trophy_week_5"},
	PerfectWeek6: {PerfectWeek6, "6th Perfect Week", "trophy_week_6"},
	PerfectWeek7: {PerfectWeek7, "7th Perfect Week", "trophy_week_7"},
	TwoInADay:    {TwoInADay, "Two in a Day", "trophy_day_2"},
	ThreeInADay:  {ThreeInADay, "Three in a Day", "trophy_day_3"},
	LotsInADay:   {LotsInADay, "Workout Machine", "trophy_day_4"},
}

// StreakThresholds maps streak lengths to their milestone trophies,
// ascending.
var StreakThresholds = []struct {
	Days int
	Type Type
}{
	{5, Streak5},
	{10, Streak10},
	{25, Streak25},
	{50, Streak50},
	{100, Streak100},
	{200, Streak200},
}

var perfectWeekOrdinals = [...]Type{
	PerfectWeek1, PerfectWeek2, PerfectWeek3, PerfectWeek4,
	PerfectWeek5, PerfectWeek6, PerfectWeek7,
}

// ForPerfectWeekOrdinal returns the trophy for the nth qualifying week
// (1-based). Weeks past the seventh earn nothing.
func ForPerfectWeekOrdinal(n int) (Type, bool) {
	if n < 1 || n > len(perfectWeekOrdinals) {
		return 0, false
	}
	return perfectWeekOrdinals[n-1], true
}

// Valid reports whether t is a known variant.
func (t Type) Valid() bool {
	_, ok := catalog[t]
	return ok
}

// Info returns the presentation record for t. Panics on an unknown
// variant; callers hold only values obtained from this package or
// validated with Valid.
func (t Type) Info() Info {
	info, ok := catalog[t]
	if !ok {
		panic(fmt.Sprintf("trophy: unknown type %d", int(t)))
	}
	return info
}

func (t Type) String() string {
	if info, ok := catalog[t]; ok {
		return info.Name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}
