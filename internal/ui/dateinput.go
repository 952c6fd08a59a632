package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// dateTimeInput edits a due date as five fields: YYYY MM DD HH MM.
type dateTimeInput struct {
	fields [5]textinput.Model
	focus  int
	loc    *time.Location
}

func newDateTimeInput(loc *time.Location) dateTimeInput {
	placeholders := [5]string{"YYYY", "MM", "DD", "HH", "MM"}
	charLimits := [5]int{4, 2, 2, 2, 2}

	var fields [5]textinput.Model
	for i := 0; i < 5; i++ {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = charLimits[i]
		ti.Width = charLimits[i] + 2
		ti.Validate = func(s string) error {
			for _, r := range s {
				if !unicode.IsDigit(r) {
					return fmt.Errorf("digits only")
				}
			}
			return nil
		}
		fields[i] = ti
	}

	return dateTimeInput{fields: fields, loc: loc}
}

func (d *dateTimeInput) Focus() {
	d.focusField(0)
}

func (d *dateTimeInput) Blur() {
	for i := range d.fields {
		d.fields[i].Blur()
	}
}

func (d *dateTimeInput) SetValue(t time.Time) {
	local := t.In(d.loc)
	d.fields[0].SetValue(fmt.Sprintf("%04d", local.Year()))
	d.fields[1].SetValue(fmt.Sprintf("%02d", int(local.Month())))
	d.fields[2].SetValue(fmt.Sprintf("%02d", local.Day()))
	d.fields[3].SetValue(fmt.Sprintf("%02d", local.Hour()))
	d.fields[4].SetValue(fmt.Sprintf("%02d", local.Minute()))
}

// Value parses the fields into an instant in the configured timezone. Year,
// month and day default to today; hour and minute are required.
func (d *dateTimeInput) Value() (time.Time, error) {
	now := time.Now().In(d.loc)

	yyyy := strings.TrimSpace(d.fields[0].Value())
	mm := strings.TrimSpace(d.fields[1].Value())
	dd := strings.TrimSpace(d.fields[2].Value())
	hh := strings.TrimSpace(d.fields[3].Value())
	mi := strings.TrimSpace(d.fields[4].Value())

	if yyyy == "" {
		yyyy = fmt.Sprintf("%04d", now.Year())
	}
	if mm == "" {
		mm = fmt.Sprintf("%02d", int(now.Month()))
	}
	if dd == "" {
		dd = fmt.Sprintf("%02d", now.Day())
	}
	if hh == "" || mi == "" {
		return time.Time{}, fmt.Errorf("hour and minute are required")
	}

	s := fmt.Sprintf("%s-%s-%s %s:%s", yyyy, padLeft(mm, 2), padLeft(dd, 2), padLeft(hh, 2), padLeft(mi, 2))
	t, err := time.ParseInLocation("2006-01-02 15:04", s, d.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s", s)
	}
	return t, nil
}

func padLeft(s string, length int) string {
	for len(s) < length {
		s = "0" + s
	}
	return s
}

func (d *dateTimeInput) IsEmpty() bool {
	for i := range d.fields {
		if d.fields[i].Value() != "" {
			return false
		}
	}
	return true
}

func (d *dateTimeInput) focusField(idx int) tea.Cmd {
	d.focus = idx
	var cmds []tea.Cmd
	for i := range d.fields {
		if i == idx {
			cmds = append(cmds, d.fields[i].Focus())
		} else {
			d.fields[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

func (d dateTimeInput) Update(msg tea.Msg) (dateTimeInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "right":
			if d.focus < len(d.fields)-1 {
				cmd := d.focusField(d.focus + 1)
				return d, cmd
			}
			return d, nil
		case "shift+tab", "left":
			if d.focus > 0 {
				cmd := d.focusField(d.focus - 1)
				return d, cmd
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.fields[d.focus], cmd = d.fields[d.focus].Update(msg)
	return d, cmd
}

func (d dateTimeInput) View() string {
	return d.fields[0].View() + " - " + d.fields[1].View() + " - " + d.fields[2].View() +
		"  " + d.fields[3].View() + " : " + d.fields[4].View()
}
