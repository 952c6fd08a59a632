package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wanjala-dev/duetrack/internal/gateway"
	"github.com/wanjala-dev/duetrack/internal/model"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldDueDate
	fieldPriority
	fieldStatus
	fieldCount
)

var (
	priorityChoices = []string{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}
	statusChoices   = []string{model.StatusPending, model.StatusInProgress, model.StatusCompleted}
)

// assignmentForm is the add/edit screen. editID is 0 for a new assignment.
type assignmentForm struct {
	editID   int
	title    textinput.Model
	desc     textarea.Model
	due      dateTimeInput
	priority int
	status   int
	focus    formField
	errors   map[string]string
}

func newAssignmentForm(loc *time.Location) assignmentForm {
	ti := textinput.New()
	ti.Placeholder = "Assignment title..."
	ti.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = "What needs to be done?"
	ta.CharLimit = 4096
	ta.SetHeight(4)

	f := assignmentForm{
		title:    ti,
		desc:     ta,
		due:      newDateTimeInput(loc),
		priority: 1, // medium
		status:   0, // pending
	}
	return f
}

func (f *assignmentForm) prefill(a model.Assignment, loc *time.Location) {
	f.editID = a.ID
	f.title.SetValue(a.Title)
	f.desc.SetValue(a.Description)
	if a.DueDate != nil {
		f.due.SetValue(*a.DueDate)
	}
	for i, p := range priorityChoices {
		if p == a.Priority {
			f.priority = i
		}
	}
	for i, s := range statusChoices {
		if s == a.Status {
			f.status = i
		}
	}
}

func (f *assignmentForm) focusCurrent() tea.Cmd {
	f.title.Blur()
	f.desc.Blur()
	f.due.Blur()
	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldDescription:
		return f.desc.Focus()
	case fieldDueDate:
		return f.due.focusField(f.due.focus)
	}
	return nil
}

func (f *assignmentForm) nextField() tea.Cmd {
	f.focus = (f.focus + 1) % fieldCount
	return f.focusCurrent()
}

func (f *assignmentForm) prevField() tea.Cmd {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
	return f.focusCurrent()
}

// input gathers the current field values. The due field may be unparseable;
// that surfaces as a field error instead of an Input value.
func (f *assignmentForm) input() gateway.Input {
	in := gateway.Input{
		Title:       f.title.Value(),
		Description: f.desc.Value(),
		Priority:    priorityChoices[f.priority],
		Status:      statusChoices[f.status],
	}
	if !f.due.IsEmpty() {
		if due, err := f.due.Value(); err == nil {
			in.DueDate = due
		}
	}
	return in
}

func (f *assignmentForm) setErrors(fields map[string]string) {
	f.errors = fields
}

func (f assignmentForm) update(msg tea.Msg) (assignmentForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab":
			forward := keyMsg.String() == "tab"
			// Let the due-date widget consume tab until its last subfield.
			if f.focus == fieldDueDate {
				if forward && f.due.focus < len(f.due.fields)-1 {
					var cmd tea.Cmd
					f.due, cmd = f.due.Update(msg)
					return f, cmd
				}
				if !forward && f.due.focus > 0 {
					var cmd tea.Cmd
					f.due, cmd = f.due.Update(msg)
					return f, cmd
				}
				f.due.focus = 0
			}
			if forward {
				return f, f.nextField()
			}
			return f, f.prevField()
		case "left", "right":
			if f.focus == fieldPriority {
				f.priority = cycle(f.priority, len(priorityChoices), keyMsg.String() == "right")
				return f, nil
			}
			if f.focus == fieldStatus {
				f.status = cycle(f.status, len(statusChoices), keyMsg.String() == "right")
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.desc, cmd = f.desc.Update(msg)
	case fieldDueDate:
		f.due, cmd = f.due.Update(msg)
	}
	return f, cmd
}

func cycle(current, n int, forward bool) int {
	if forward {
		return (current + 1) % n
	}
	return (current + n - 1) % n
}

func (f assignmentForm) view() string {
	var b strings.Builder

	header := "New Assignment"
	if f.editID != 0 {
		header = "Edit Assignment"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	writeField := func(field formField, label, body, errKey string) {
		cursor := "  "
		if f.focus == field {
			cursor = "> "
		}
		b.WriteString(cursor + cardLabelStyle.Render(label) + "\n")
		b.WriteString(body + "\n")
		if msg := f.errors[errKey]; msg != "" {
			b.WriteString(errorStyle.Render("  ✕ "+msg) + "\n")
		}
		b.WriteString("\n")
	}

	writeField(fieldTitle, "Title", f.title.View(), "title")
	writeField(fieldDescription, "Description", f.desc.View(), "description")
	writeField(fieldDueDate, "Due date", f.due.View(), "due_date")
	writeField(fieldPriority, "Priority", choiceView(priorityChoices, f.priority), "priority")
	writeField(fieldStatus, "Status", choiceView(statusChoices, f.status), "status")

	b.WriteString(statusStyle.Render("tab: next field • ←/→: choose • ctrl+s: save • esc: cancel"))
	return b.String()
}

func choiceView(choices []string, selected int) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		if i == selected {
			parts[i] = lipgloss.NewStyle().Bold(true).Render("[" + c + "]")
		} else {
			parts[i] = cardLabelStyle.Render(" " + c + " ")
		}
	}
	return "  " + strings.Join(parts, " ")
}
