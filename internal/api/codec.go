package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/wanjala-dev/duetrack/internal/model"
	"github.com/wanjala-dev/duetrack/internal/stats"
)

// The API transmits due dates as wall-clock timestamps with no offset. Client
// and server agree on the reference timezone out of band; the Client carries
// it as configuration and applies it only at this boundary.
const wireTimeLayout = "2006-01-02 15:04:05"

// wireAssignment is the exact JSON shape the API sends and accepts. Incoming
// records are validated here so malformed data never reaches classification.
type wireAssignment struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

func (w wireAssignment) toModel(loc *time.Location) (model.Assignment, error) {
	a := model.Assignment{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Priority:    w.Priority,
		Status:      w.Status,
	}
	if strings.TrimSpace(w.Title) == "" {
		return model.Assignment{}, fmt.Errorf("assignment %d: empty title", w.ID)
	}
	if !model.ValidPriority(w.Priority) {
		return model.Assignment{}, fmt.Errorf("assignment %d: unknown priority %q", w.ID, w.Priority)
	}
	if !model.ValidStatus(w.Status) {
		return model.Assignment{}, fmt.Errorf("assignment %d: unknown status %q", w.ID, w.Status)
	}
	if w.DueDate != "" {
		due, err := time.ParseInLocation(wireTimeLayout, w.DueDate, loc)
		if err != nil {
			return model.Assignment{}, fmt.Errorf("assignment %d: bad due_date %q: %w", w.ID, w.DueDate, err)
		}
		a.DueDate = &due
	}
	return a, nil
}

// AssignmentBody is the request body for create and full-update calls.
type AssignmentBody struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
}

func (b AssignmentBody) toWire(loc *time.Location) wireAssignment {
	w := wireAssignment{
		Title:       b.Title,
		Description: b.Description,
		Priority:    b.Priority,
		Status:      b.Status,
	}
	if !b.DueDate.IsZero() {
		w.DueDate = b.DueDate.In(loc).Format(wireTimeLayout)
	}
	return w
}

// Statistics is the server-computed aggregate from GET /assignments/statistics.
type Statistics struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Overdue        int `json:"overdue"`
	Pending        int `json:"pending"`
	InProgress     int `json:"in_progress"`
	DueToday       int `json:"due_today"`
	DueThisWeek    int `json:"due_week"`
	DueNextWeek    int `json:"due_next_week"`
	NoDueDate      int `json:"no_due_date"`
	CompletionRate int `json:"completion_rate"`
	OnTimeRate     int `json:"ontime_rate"`
	HighPriority   int `json:"high_priority"`
	MediumPriority int `json:"medium_priority"`
	LowPriority    int `json:"low_priority"`
}

// Aggregate maps the server-computed statistics onto the local aggregate
// shape so both sources render through the same views.
func (s Statistics) Aggregate() stats.Aggregate {
	return stats.Aggregate{
		Total:          s.Total,
		Completed:      s.Completed,
		Overdue:        s.Overdue,
		Pending:        s.Pending,
		InProgress:     s.InProgress,
		DueToday:       s.DueToday,
		DueThisWeek:    s.DueThisWeek,
		DueNextWeek:    s.DueNextWeek,
		NoDueDate:      s.NoDueDate,
		CompletionRate: s.CompletionRate,
		OnTimeRate:     s.OnTimeRate,
		HighPriority:   s.HighPriority,
		MediumPriority: s.MediumPriority,
		LowPriority:    s.LowPriority,
	}
}

// User is the profile shape from the auth endpoints.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
