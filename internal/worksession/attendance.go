package worksession

import (
	"fmt"
	"sort"
	"time"
)

const dayKey = "2006-01-02"

// LeaveRange is an approved leave, both ends inclusive.
type LeaveRange struct {
	From time.Time
	To   time.Time
}

// Reconcile derives the month's present, leave and absent day sets. Present
// days come from session logins in loc. Leave days expand every overlapping
// approved leave in full, so a leave that starts or ends in a neighbouring
// month contributes those days too; absentDates only walks the month itself.
//
// absentDays keeps the historical formula max(|present ∪ leave| - |present| -
// |leave|, 0); absentDates lists the real complement.
func Reconcile(userID string, year int, month time.Month, loc *time.Location, logins []time.Time, leaves []LeaveRange) AttendanceResponse {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	present := make(map[string]bool)
	for _, t := range logins {
		present[t.In(loc).Format(dayKey)] = true
	}

	onLeave := make(map[string]bool)
	for _, l := range leaves {
		d := dateOnly(l.From)
		last := dateOnly(l.To)
		for !d.After(last) {
			onLeave[d.Format(dayKey)] = true
			d = d.AddDate(0, 0, 1)
		}
	}

	working := make(map[string]bool, len(present)+len(onLeave))
	for k := range present {
		working[k] = true
	}
	for k := range onLeave {
		working[k] = true
	}

	var absent []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		k := d.Format(dayKey)
		if !present[k] && !onLeave[k] {
			absent = append(absent, k)
		}
	}

	absentDays := len(working) - len(present) - len(onLeave)
	if absentDays < 0 {
		absentDays = 0
	}

	return AttendanceResponse{
		UserID:       userID,
		Month:        fmt.Sprintf("%d-%d", int(month), year),
		TotalDays:    len(working),
		PresentDays:  len(present),
		LeaveDays:    len(onLeave),
		AbsentDays:   absentDays,
		PresentDates: sortedKeys(present),
		LeaveDates:   sortedKeys(onLeave),
		AbsentDates:  nonNil(absent),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
