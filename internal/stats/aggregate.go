package stats

import (
	"math"
	"time"

	"github.com/wanjala-dev/duetrack/internal/model"
)

// Aggregate is the derived summary for one snapshot at one instant. It is
// ephemeral: recomputed from scratch after every reload, never patched.
type Aggregate struct {
	Total      int
	Completed  int
	Overdue    int
	Pending    int
	InProgress int

	DueToday    int
	DueThisWeek int
	DueNextWeek int
	NoDueDate   int

	// Percentages, rounded. Zero denominators yield 0, never NaN.
	CompletionRate int
	OnTimeRate     int

	HighPriority   int
	MediumPriority int
	LowPriority    int
}

// Compute derives the aggregate for a snapshot at the given instant. It is a
// pure function over the snapshot and the classifier; calling it twice with
// the same inputs gives the same result.
//
// Status counters partition the snapshot: every overdue assignment counts
// only under Overdue, so Completed+Overdue+Pending+InProgress == Total.
//
// On-time completions are evaluated against now, not against the (unknown)
// completion instant, mirroring the upstream dashboard: an assignment
// finished early still drops out of the on-time count once its due date
// passes. Known approximation, kept for parity.
func Compute(items []model.Assignment, now time.Time) Aggregate {
	agg := Aggregate{Total: len(items)}

	weekStart := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)      // exclusive
	nextWeekEnd := weekStart.AddDate(0, 0, 14) // exclusive

	onTime := 0
	for _, a := range items {
		switch a.Priority {
		case model.PriorityHigh:
			agg.HighPriority++
		case model.PriorityMedium:
			agg.MediumPriority++
		case model.PriorityLow:
			agg.LowPriority++
		}

		cls := model.Classify(a, now)
		switch {
		case cls == model.ClassCompleted:
			agg.Completed++
			// A completed assignment without a due date never counts as on
			// time, matching the dashboard it mirrors.
			if a.DueDate != nil && !a.DueDate.Before(now) {
				onTime++
			}
		case cls == model.ClassOverdue:
			agg.Overdue++
		case a.Status == model.StatusInProgress:
			agg.InProgress++
		default:
			agg.Pending++
		}

		if a.DueDate == nil {
			agg.NoDueDate++
			continue
		}
		if cls == model.ClassCompleted {
			continue
		}
		due := a.DueDate.In(now.Location())
		if a.IsDueToday(now) {
			agg.DueToday++
		}
		if !due.Before(weekStart) && due.Before(weekEnd) {
			agg.DueThisWeek++
		} else if !due.Before(weekEnd) && due.Before(nextWeekEnd) {
			agg.DueNextWeek++
		}
	}

	agg.CompletionRate = percent(agg.Completed, agg.Total)
	agg.OnTimeRate = percent(onTime, agg.Completed)
	return agg
}

// percent rounds 100*part/whole, forcing 0 on an empty denominator.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
