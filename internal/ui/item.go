package ui

import (
	"fmt"
	"time"

	"github.com/wanjala-dev/duetrack/internal/model"
)

// assignmentItem wraps model.Assignment to satisfy the list.DefaultItem
// interface. now is captured at render time so every row re-derives its
// classification against the current clock.
type assignmentItem struct {
	assignment model.Assignment
	now        time.Time
}

func classMark(c model.Classification) string {
	switch c {
	case model.ClassOverdue:
		return "⚠️ "
	case model.ClassUrgent:
		return "🔥 "
	case model.ClassDueSoon:
		return "📅 "
	default:
		return ""
	}
}

func (i assignmentItem) Title() string {
	check := "[ ]"
	if i.assignment.Status == model.StatusCompleted {
		check = "[x]"
	}
	mark := classMark(model.Classify(i.assignment, i.now))
	return fmt.Sprintf("%s %s%s", check, mark, i.assignment.Title)
}

func (i assignmentItem) Description() string {
	due := "no due date"
	if i.assignment.DueDate != nil {
		due = "due " + i.assignment.DueDate.In(i.now.Location()).Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%s · %s · %s", due, i.assignment.Priority, i.assignment.Status)
}

func (i assignmentItem) FilterValue() string {
	return i.assignment.Title
}
