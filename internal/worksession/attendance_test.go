package worksession_test

import (
	"testing"
	"time"

	"go-crm/internal/worksession"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	logins := []time.Time{
		time.Date(2026, 2, 2, 4, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC),
		// 21:00 UTC on the 2nd is the 3rd in IST.
		time.Date(2026, 2, 2, 21, 0, 0, 0, time.UTC),
	}
	leaves := []worksession.LeaveRange{
		{From: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{From: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)},
	}

	res := worksession.Reconcile("u1", 2026, time.February, ist, logins, leaves)

	assert.Equal(t, "2-2026", res.Month)
	assert.Equal(t, []string{"2026-02-02", "2026-02-03"}, res.PresentDates)
	assert.Equal(t, []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-03", "2026-02-04"}, res.LeaveDates)
	assert.Equal(t, 6, res.TotalDays)
	assert.Equal(t, 2, res.PresentDays)
	assert.Equal(t, 5, res.LeaveDays)
	assert.Equal(t, 0, res.AbsentDays)
	assert.Len(t, res.AbsentDates, 28-4)
	assert.Equal(t, "2026-02-05", res.AbsentDates[0])
}

func TestReconcile_LeaveSpillsIntoNextMonth(t *testing.T) {
	leaves := []worksession.LeaveRange{
		{From: time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)},
	}

	res := worksession.Reconcile("u1", 2026, time.March, time.UTC, nil, leaves)

	assert.Equal(t, []string{"2026-03-30", "2026-03-31", "2026-04-01", "2026-04-02"}, res.LeaveDates)
	assert.Equal(t, 4, res.LeaveDays)
	assert.Equal(t, 4, res.TotalDays)
	assert.Len(t, res.AbsentDates, 29)
	assert.Equal(t, "2026-03-29", res.AbsentDates[len(res.AbsentDates)-1])
}

func TestReconcile_EmptyMonth(t *testing.T) {
	res := worksession.Reconcile("u1", 2026, time.April, nil, nil, nil)

	assert.Equal(t, 0, res.TotalDays)
	assert.Empty(t, res.PresentDates)
	assert.NotNil(t, res.PresentDates)
	assert.Len(t, res.AbsentDates, 30)
}

func TestHours(t *testing.T) {
	login := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "8.25", worksession.Hours(login, login.Add(8*time.Hour+15*time.Minute)).StringFixed(2))
	assert.Equal(t, "0.33", worksession.Hours(login, login.Add(20*time.Minute)).StringFixed(2))
}
