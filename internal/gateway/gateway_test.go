package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wanjala-dev/duetrack/internal/api"
	"github.com/wanjala-dev/duetrack/internal/model"
	"github.com/wanjala-dev/duetrack/internal/store"
)

type fakeAPI struct {
	creates, updates, patches, deletes int
	lists                              int
	err                                error
}

func (f *fakeAPI) CreateAssignment(ctx context.Context, body api.AssignmentBody) (model.Assignment, error) {
	f.creates++
	return model.Assignment{ID: 1, Title: body.Title, Priority: body.Priority, Status: body.Status}, f.err
}

func (f *fakeAPI) UpdateAssignment(ctx context.Context, id int, body api.AssignmentBody) (model.Assignment, error) {
	f.updates++
	return model.Assignment{ID: id, Title: body.Title, Priority: body.Priority, Status: body.Status}, f.err
}

func (f *fakeAPI) PatchStatus(ctx context.Context, id int, status string) error {
	f.patches++
	return f.err
}

func (f *fakeAPI) DeleteAssignment(ctx context.Context, id int) error {
	f.deletes++
	return f.err
}

func (f *fakeAPI) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	f.lists++
	return nil, nil
}

func newTestGateway(f *fakeAPI, now time.Time) *Gateway {
	g := New(f, store.New(f, nil))
	g.now = func() time.Time { return now }
	return g
}

func validInput(now time.Time) Input {
	return Input{
		Title:       "Essay",
		Description: "History essay",
		DueDate:     now.Add(time.Hour),
		Priority:    "high",
		Status:      "pending",
	}
}

func TestCreateValidInputReloadsStore(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := &fakeAPI{}
	g := newTestGateway(f, now)

	if _, err := g.Create(context.Background(), validInput(now)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.creates != 1 {
		t.Errorf("expected 1 create call, got %d", f.creates)
	}
	if f.lists != 1 {
		t.Errorf("expected exactly 1 reload after create, got %d", f.lists)
	}
}

func TestCreateDueDateTooSoonIsLocalError(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := &fakeAPI{}
	g := newTestGateway(f, now)

	in := validInput(now)
	in.DueDate = now.Add(2 * time.Minute)

	_, err := g.Create(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["due_date"] == "" {
		t.Errorf("expected a due_date field error, got %v", verr.Fields)
	}
	if f.creates != 0 || f.lists != 0 {
		t.Errorf("validation failure must not reach the network: creates=%d lists=%d", f.creates, f.lists)
	}
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	err := Validate(Input{Title: "  ", Priority: "asap", Status: ""}, now)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"title", "description", "due_date", "priority", "status"} {
		if verr.Fields[field] == "" {
			t.Errorf("expected an error for field %q, got %v", field, verr.Fields)
		}
	}
}

func TestValidateAcceptsExactFiveMinuteLead(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	in := validInput(now)
	in.DueDate = now.Add(5 * time.Minute)
	if err := Validate(in, now); err != nil {
		t.Fatalf("a due date exactly 5 minutes out should pass, got %v", err)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := &fakeAPI{}
	g := newTestGateway(f, now)

	err := g.Delete(context.Background(), 4, false)
	if !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if f.deletes != 0 {
		t.Errorf("unconfirmed delete must not issue a request, got %d", f.deletes)
	}

	if err := g.Delete(context.Background(), 4, true); err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	if f.deletes != 1 {
		t.Errorf("expected 1 delete call, got %d", f.deletes)
	}
	if f.lists != 1 {
		t.Errorf("expected exactly 1 reload after delete, got %d", f.lists)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := &fakeAPI{}
	g := newTestGateway(f, now)

	var verr *ValidationError
	if err := g.SetStatus(context.Background(), 4, "done"); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if f.patches != 0 {
		t.Errorf("invalid status must not reach the network, got %d patches", f.patches)
	}

	if err := g.SetStatus(context.Background(), 4, model.StatusCompleted); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if f.patches != 1 || f.lists != 1 {
		t.Errorf("expected 1 patch and 1 reload, got %d / %d", f.patches, f.lists)
	}
}

func TestFailedMutationLeavesStoreUntouched(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := &fakeAPI{err: &api.ServerError{Status: 500}}
	g := newTestGateway(f, now)

	_, err := g.Create(context.Background(), validInput(now))
	var se *api.ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if f.lists != 0 {
		t.Errorf("failed mutation must not trigger a reload, got %d", f.lists)
	}
}
