package model

import "time"

// Classification is the derived urgency tag for an assignment. It is never
// stored; every render recomputes it against the current clock.
type Classification int

const (
	ClassNormal Classification = iota
	ClassDueSoon
	ClassUrgent
	ClassOverdue
	ClassCompleted
	ClassNoDueDate
)

const (
	urgentWindow  = 30 * time.Minute
	dueSoonWindow = 60 * time.Minute
)

func (c Classification) String() string {
	switch c {
	case ClassDueSoon:
		return "due-soon"
	case ClassUrgent:
		return "urgent"
	case ClassOverdue:
		return "overdue"
	case ClassCompleted:
		return "completed"
	case ClassNoDueDate:
		return "no-due-date"
	default:
		return "normal"
	}
}

// Classify derives the urgency tag for an assignment at the given instant.
// Completed assignments are never overdue, whatever their due date. A missing
// due date excludes the assignment from every time bucket. The due date is an
// absolute instant; no timezone conversion happens here. Boundaries are
// inclusive on the lower classification: due exactly now or in exactly 30
// minutes is urgent, exactly 60 minutes is due-soon.
func Classify(a Assignment, now time.Time) Classification {
	if a.Status == StatusCompleted {
		return ClassCompleted
	}
	if a.DueDate == nil {
		return ClassNoDueDate
	}
	d := a.DueDate.Sub(now)
	switch {
	case d < 0:
		return ClassOverdue
	case d <= urgentWindow:
		return ClassUrgent
	case d <= dueSoonWindow:
		return ClassDueSoon
	default:
		return ClassNormal
	}
}
