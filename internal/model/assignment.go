package model

import "time"

// Status values accepted by the remote API.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Priority values accepted by the remote API.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Assignment is the client-side copy of a record owned by the remote API.
type Assignment struct {
	ID          int
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Status      string
}

// ValidStatus reports whether s is one of the API's status values.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// ValidPriority reports whether p is one of the API's priority values.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// IsDueToday returns true if the assignment is due on the same calendar day
// as now and is not completed.
func (a Assignment) IsDueToday(now time.Time) bool {
	if a.DueDate == nil || a.Status == StatusCompleted {
		return false
	}
	y1, m1, d1 := a.DueDate.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
