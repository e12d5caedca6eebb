package achievements

import (
	"time"

	"github.com/strideapp/stride-api/internal/trophy"
)

// Record is one earned trophy: a variant and the calendar day it was
// earned. Two records are the same achievement iff both fields match.
type Record struct {
	Type trophy.Type
	Day  time.Time
}

// recordKey is Record reduced to comparable parts. time.Time equality is
// not usable directly (location and monotonic readings differ between a
// freshly computed day and one read back from the database).
type recordKey struct {
	typ trophy.Type
	day string
}

func (r Record) key() recordKey {
	return recordKey{r.Type, dayKey(r.Day)}
}

// Result is the full output of one calculation pass. Records keeps
// emission order; DatesByType holds the canonical earned date per variant,
// last write winning (only the streak milestones ever write a type twice).
type Result struct {
	Records     []Record
	DatesByType map[trophy.Type]time.Time
}

func emptyResult() Result {
	return Result{DatesByType: map[trophy.Type]time.Time{}}
}

func (r *Result) add(rec Record) {
	r.Records = append(r.Records, rec)
	r.DatesByType[rec.Type] = rec.Day
}

// set returns the records as an unordered set.
func (r Result) set() map[recordKey]struct{} {
	set := make(map[recordKey]struct{}, len(r.Records))
	for _, rec := range r.Records {
		set[rec.key()] = struct{}{}
	}
	return set
}
