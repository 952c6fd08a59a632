package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wanjala-dev/duetrack/internal/stats"
)

// The renderers below are pure: they map an aggregate to a string and own no
// state, so calling one twice with the same input paints the same output.
// Charts are rebuilt from scratch on every refresh; there is no instance to
// leak or mutate.

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241"))
	cardValueStyle = lipgloss.NewStyle().Bold(true)
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	completedColor  = lipgloss.Color("42")
	pendingColor    = lipgloss.Color("75")
	inProgressColor = lipgloss.Color("214")
	overdueColor    = lipgloss.Color("196")
	highColor       = lipgloss.Color("196")
	mediumColor     = lipgloss.Color("214")
	lowColor        = lipgloss.Color("42")
)

// renderSummaryCards renders the total/completed/overdue/pending cards with
// their share of the total.
func renderSummaryCards(agg stats.Aggregate) string {
	pct := func(n int) string {
		if agg.Total == 0 {
			return ""
		}
		return fmt.Sprintf(" (%d%%)", percentOf(n, agg.Total))
	}

	cards := []string{
		summaryCard("Total", fmt.Sprintf("%d", agg.Total)),
		summaryCard("Completed", fmt.Sprintf("%d%s", agg.Completed, pct(agg.Completed))),
		summaryCard("Overdue", fmt.Sprintf("%d%s", agg.Overdue, pct(agg.Overdue))),
		summaryCard("Pending", fmt.Sprintf("%d%s", agg.Pending+agg.InProgress, pct(agg.Pending+agg.InProgress))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func summaryCard(label, value string) string {
	return cardStyle.Render(cardValueStyle.Render(value) + "\n" + cardLabelStyle.Render(label))
}

func percentOf(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(float64(part)/float64(whole)*100 + 0.5)
}

type chartRow struct {
	label string
	count int
	color lipgloss.Color
}

// renderStatusChart renders the status distribution as horizontal bars.
func renderStatusChart(agg stats.Aggregate, width int) string {
	rows := []chartRow{
		{"Completed", agg.Completed, completedColor},
		{"Pending", agg.Pending, pendingColor},
		{"In progress", agg.InProgress, inProgressColor},
		{"Overdue", agg.Overdue, overdueColor},
	}
	return renderBarChart("Status distribution", rows, width)
}

// renderPriorityChart renders the priority distribution as horizontal bars.
func renderPriorityChart(agg stats.Aggregate, width int) string {
	rows := []chartRow{
		{"High", agg.HighPriority, highColor},
		{"Medium", agg.MediumPriority, mediumColor},
		{"Low", agg.LowPriority, lowColor},
	}
	return renderBarChart("Priority breakdown", rows, width)
}

func renderBarChart(title string, rows []chartRow, width int) string {
	const labelWidth = 12
	barWidth := width - labelWidth - 5
	if barWidth < 4 {
		barWidth = 4
	}

	max := 0
	for _, r := range rows {
		if r.count > max {
			max = r.count
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, r := range rows {
		filled := 0
		if max > 0 {
			filled = r.count * barWidth / max
		}
		if r.count > 0 && filled == 0 {
			filled = 1
		}
		bar := lipgloss.NewStyle().Foreground(r.color).Render(strings.Repeat("█", filled))
		fmt.Fprintf(&b, "%-*s %s %d\n", labelWidth, r.label, bar, r.count)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDueBreakdown renders the date-bucket counters and the two rates.
func renderDueBreakdown(agg stats.Aggregate) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Deadlines"))
	fmt.Fprintf(&b, "\ndue today:     %d", agg.DueToday)
	fmt.Fprintf(&b, "\ndue this week: %d", agg.DueThisWeek)
	fmt.Fprintf(&b, "\ndue next week: %d", agg.DueNextWeek)
	fmt.Fprintf(&b, "\nno due date:   %d", agg.NoDueDate)
	fmt.Fprintf(&b, "\n\ncompletion rate: %3d%%  %s", agg.CompletionRate, progressBar(agg.CompletionRate, 20))
	fmt.Fprintf(&b, "\non-time rate:    %3d%%  %s", agg.OnTimeRate, progressBar(agg.OnTimeRate, 20))
	return b.String()
}

func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return lipgloss.NewStyle().Foreground(completedColor).Render(strings.Repeat("█", filled)) +
		cardLabelStyle.Render(strings.Repeat("░", width-filled))
}
