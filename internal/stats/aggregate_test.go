package stats

import (
	"testing"
	"time"

	"github.com/wanjala-dev/duetrack/internal/model"
)

func ptr(t time.Time) *time.Time { return &t }

func TestComputeEmptySnapshot(t *testing.T) {
	agg := Compute(nil, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	if agg.Total != 0 {
		t.Errorf("expected total 0, got %d", agg.Total)
	}
	if agg.CompletionRate != 0 || agg.OnTimeRate != 0 {
		t.Errorf("expected rates forced to 0 on empty snapshot, got %d / %d", agg.CompletionRate, agg.OnTimeRate)
	}
}

func TestComputeSinglePendingAssignment(t *testing.T) {
	// Tuesday noon; the assignment is due in 10 minutes.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []model.Assignment{{
		ID: 1, Title: "Quiz prep", DueDate: ptr(now.Add(10 * time.Minute)),
		Priority: model.PriorityHigh, Status: model.StatusPending,
	}}

	agg := Compute(items, now)
	if agg.Total != 1 || agg.Completed != 0 || agg.Overdue != 0 {
		t.Errorf("unexpected counts: %+v", agg)
	}
	if agg.Pending != 1 {
		t.Errorf("expected 1 pending, got %d", agg.Pending)
	}
	if agg.DueToday != 1 {
		t.Errorf("expected assignment due in 10 minutes to count as due today, got %d", agg.DueToday)
	}
	if agg.DueThisWeek != 1 {
		t.Errorf("expected it in this week's bucket, got %d", agg.DueThisWeek)
	}
	if agg.HighPriority != 1 {
		t.Errorf("expected 1 high priority, got %d", agg.HighPriority)
	}
	if agg.CompletionRate != 0 || agg.OnTimeRate != 0 {
		t.Errorf("expected 0%% rates (completed denominator is 0), got %d / %d", agg.CompletionRate, agg.OnTimeRate)
	}
}

func TestComputeStatusPartition(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []model.Assignment{
		{ID: 1, Title: "a", DueDate: ptr(now.Add(-time.Hour)), Priority: "low", Status: model.StatusPending},
		{ID: 2, Title: "b", DueDate: ptr(now.Add(-time.Hour)), Priority: "low", Status: model.StatusCompleted},
		{ID: 3, Title: "c", DueDate: ptr(now.Add(time.Hour)), Priority: "medium", Status: model.StatusInProgress},
		{ID: 4, Title: "d", Priority: "high", Status: model.StatusPending},
	}

	agg := Compute(items, now)
	if agg.Overdue != 1 {
		t.Errorf("expected 1 overdue (completed one is exempt), got %d", agg.Overdue)
	}
	if agg.Completed != 1 || agg.InProgress != 1 || agg.Pending != 1 {
		t.Errorf("unexpected partition: %+v", agg)
	}
	if sum := agg.Completed + agg.Overdue + agg.Pending + agg.InProgress; sum != agg.Total {
		t.Errorf("status counters must partition the snapshot: %d != %d", sum, agg.Total)
	}
	if agg.NoDueDate != 1 {
		t.Errorf("expected 1 with no due date, got %d", agg.NoDueDate)
	}
}

func TestComputeWeekBuckets(t *testing.T) {
	// Wednesday 2026-03-11. Week runs Sunday 03-08 .. Saturday 03-14;
	// next week Sunday 03-15 .. Saturday 03-21.
	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	items := []model.Assignment{
		{ID: 1, Title: "today", DueDate: ptr(time.Date(2026, 3, 11, 23, 0, 0, 0, time.UTC)), Priority: "low", Status: "pending"},
		{ID: 2, Title: "saturday", DueDate: ptr(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)), Priority: "low", Status: "pending"},
		{ID: 3, Title: "sunday next", DueDate: ptr(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)), Priority: "low", Status: "pending"},
		{ID: 4, Title: "saturday next", DueDate: ptr(time.Date(2026, 3, 21, 12, 0, 0, 0, time.UTC)), Priority: "low", Status: "pending"},
		{ID: 5, Title: "beyond", DueDate: ptr(time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)), Priority: "low", Status: "pending"},
	}

	agg := Compute(items, now)
	if agg.DueToday != 1 {
		t.Errorf("expected 1 due today, got %d", agg.DueToday)
	}
	if agg.DueThisWeek != 2 {
		t.Errorf("expected 2 due this week, got %d", agg.DueThisWeek)
	}
	if agg.DueNextWeek != 2 {
		t.Errorf("expected 2 due next week, got %d", agg.DueNextWeek)
	}
}

func TestComputeRates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []model.Assignment{
		// Completed with due date still ahead: counts as on time.
		{ID: 1, Title: "a", DueDate: ptr(now.Add(time.Hour)), Priority: "low", Status: model.StatusCompleted},
		// Completed but due date already passed: read-time evaluation says late.
		{ID: 2, Title: "b", DueDate: ptr(now.Add(-time.Hour)), Priority: "low", Status: model.StatusCompleted},
		{ID: 3, Title: "c", DueDate: ptr(now.Add(time.Hour)), Priority: "low", Status: model.StatusPending},
	}

	agg := Compute(items, now)
	if agg.CompletionRate != 67 {
		t.Errorf("expected completion rate round(200/3)=67, got %d", agg.CompletionRate)
	}
	if agg.OnTimeRate != 50 {
		t.Errorf("expected on-time rate 50, got %d", agg.OnTimeRate)
	}
}

func TestComputeOnTimeWithoutDueDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []model.Assignment{
		{ID: 1, Title: "a", Priority: "low", Status: model.StatusCompleted},
	}
	agg := Compute(items, now)
	if agg.OnTimeRate != 0 {
		t.Errorf("a completed assignment with no due date is not counted on time, got %d%%", agg.OnTimeRate)
	}
}

func TestComputeCompletedExcludedFromBuckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []model.Assignment{
		{ID: 1, Title: "done today", DueDate: ptr(now.Add(2 * time.Hour)), Priority: "low", Status: model.StatusCompleted},
	}
	agg := Compute(items, now)
	if agg.DueToday != 0 || agg.DueThisWeek != 0 {
		t.Errorf("completed assignments must not land in date buckets: %+v", agg)
	}
}
