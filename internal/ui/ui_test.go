package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wanjala-dev/duetrack/internal/api"
	"github.com/wanjala-dev/duetrack/internal/gateway"
	"github.com/wanjala-dev/duetrack/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	client, err := api.New("http://127.0.0.1:1/api", time.UTC)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	st := store.New(client, nil)
	return NewModel(client, st, gateway.New(client, st), time.UTC)
}

func TestStatisticsUnauthorizedReturnsToLogin(t *testing.T) {
	m := newTestModel(t)
	m.state = stateList

	updated, _ := m.Update(statisticsMsg{err: api.ErrUnauthorized})
	got := updated.(Model)
	if got.state != stateLogin {
		t.Fatalf("expected stateLogin after 401 from statistics, got %d", got.state)
	}
	if got.note.title != "Session expired" {
		t.Errorf("expected a session-expired notice, got %q", got.note.title)
	}
}

func TestStatisticsServerErrorFallsBackToLocalAggregate(t *testing.T) {
	m := newTestModel(t)
	m.state = stateList

	updated, _ := m.Update(statisticsMsg{err: &api.ServerError{Status: 500}})
	got := updated.(Model)
	if got.state != stateAnalytics {
		t.Fatalf("expected the analytics screen with local numbers, got state %d", got.state)
	}
	if got.serverAgg != nil {
		t.Errorf("expected no server aggregate after a failed fetch")
	}
}

func TestKeypressDismissesNotice(t *testing.T) {
	m := newTestModel(t)
	m.state = stateList
	m.notify(noticeSuccess, "Success", "Assignment created.")
	if m.note.title == "" {
		t.Fatal("expected a notice to be set")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	got := updated.(Model)
	if got.note.title != "" {
		t.Errorf("expected the notice to clear on keypress, still showing %q", got.note.title)
	}
}
