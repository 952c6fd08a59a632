package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, time.UTC)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, srv
}

func TestListAssignmentsParsesWireFormat(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assignments" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "Essay", "description": "History essay", "due_date": "2026-03-10 14:30:00", "priority": "high", "status": "pending"},
			{"id": 2, "title": "Reading", "description": "", "due_date": "", "priority": "low", "status": "completed"}
		]`))
	}))

	got, err := c.ListAssignments(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	want := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	if got[0].DueDate == nil || !got[0].DueDate.Equal(want) {
		t.Errorf("expected due date %v, got %v", want, got[0].DueDate)
	}
	if got[1].DueDate != nil {
		t.Errorf("expected nil due date for record without one, got %v", got[1].DueDate)
	}
}

func TestListAssignmentsRejectsMalformedRecord(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "title": "Essay", "due_date": "tomorrow-ish", "priority": "high", "status": "pending"}]`))
	}))

	if _, err := c.ListAssignments(context.Background()); err == nil {
		t.Fatal("expected error for unparseable due_date")
	}

	c2, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 2, "title": "Essay", "priority": "asap", "status": "pending"}]`))
	}))
	if _, err := c2.ListAssignments(context.Background()); err == nil {
		t.Fatal("expected error for unknown priority")
	}
}

func TestUnauthorizedMapsToErrUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.ListAssignments(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestServerErrorCarriesStatusAndMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "database down"}`))
	}))

	_, err := c.ListAssignments(context.Background())
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", se.Status)
	}
	if se.Message != "database down" {
		t.Errorf("expected message 'database down', got %q", se.Message)
	}
}

func TestNetworkErrorForUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, time.UTC)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = c.ListAssignments(context.Background())
	if !IsNetwork(err) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestCreateAssignmentEncodesWireTime(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 7, "title": "Essay", "description": "x", "due_date": "2026-03-10 17:30:00", "priority": "high", "status": "pending"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, loc)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	// 14:30 UTC is 17:30 in Nairobi; the wire carries the local wall clock.
	due := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	created, err := c.CreateAssignment(context.Background(), AssignmentBody{
		Title: "Essay", Description: "x", DueDate: due, Priority: "high", Status: "pending",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected created id 7, got %d", created.ID)
	}
	if want := `"due_date":"2026-03-10 17:30:00"`; !strings.Contains(string(gotBody), want) {
		t.Errorf("request body %s does not carry %s", gotBody, want)
	}
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123", Path: "/"})
			w.Write([]byte(`{"user": {"id": 1, "email": "j@example.com"}}`))
		case "/assignments":
			cookie, err := r.Cookie("session")
			if err != nil || cookie.Value != "abc123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`[]`))
		}
	}))

	if _, err := c.Login(context.Background(), "j@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := c.ListAssignments(context.Background()); err != nil {
		t.Fatalf("list after login should carry session cookie: %v", err)
	}
}
