package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wanjala-dev/duetrack/internal/api"
	"github.com/wanjala-dev/duetrack/internal/model"
	"github.com/wanjala-dev/duetrack/internal/store"
)

// Mutator is the slice of the API client the gateway needs.
type Mutator interface {
	CreateAssignment(ctx context.Context, body api.AssignmentBody) (model.Assignment, error)
	UpdateAssignment(ctx context.Context, id int, body api.AssignmentBody) (model.Assignment, error)
	PatchStatus(ctx context.Context, id int, status string) error
	DeleteAssignment(ctx context.Context, id int) error
}

// ErrNotConfirmed is returned when a delete is requested without the
// destructive-action gate having been passed. No request is issued.
var ErrNotConfirmed = errors.New("delete not confirmed")

// Gateway validates and issues mutations, then refreshes the store so every
// dependent view re-renders from the new snapshot. Validation failures never
// reach the network.
type Gateway struct {
	client Mutator
	store  *store.Store
	now    func() time.Time
}

// New builds a gateway over the API client and store.
func New(client Mutator, st *store.Store) *Gateway {
	return &Gateway{client: client, store: st, now: time.Now}
}

// Create validates the input, posts the new assignment and reloads the store.
func (g *Gateway) Create(ctx context.Context, in Input) (model.Assignment, error) {
	if err := Validate(in, g.now()); err != nil {
		return model.Assignment{}, err
	}
	created, err := g.client.CreateAssignment(ctx, in.body())
	if err != nil {
		return model.Assignment{}, fmt.Errorf("create assignment: %w", err)
	}
	return created, g.refresh(ctx)
}

// Update validates the input, replaces the assignment and reloads the store.
func (g *Gateway) Update(ctx context.Context, id int, in Input) (model.Assignment, error) {
	if err := Validate(in, g.now()); err != nil {
		return model.Assignment{}, err
	}
	updated, err := g.client.UpdateAssignment(ctx, id, in.body())
	if err != nil {
		return model.Assignment{}, fmt.Errorf("update assignment %d: %w", id, err)
	}
	return updated, g.refresh(ctx)
}

// SetStatus changes only the status, typically pending -> completed.
func (g *Gateway) SetStatus(ctx context.Context, id int, status string) error {
	if !model.ValidStatus(status) {
		return &ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("unknown status %q", status),
		}}
	}
	if err := g.client.PatchStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set status of assignment %d: %w", id, err)
	}
	return g.refresh(ctx)
}

// Delete removes an assignment. confirmed must come from an explicit user
// gesture; without it no request is issued.
func (g *Gateway) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := g.client.DeleteAssignment(ctx, id); err != nil {
		return fmt.Errorf("delete assignment %d: %w", id, err)
	}
	return g.refresh(ctx)
}

func (g *Gateway) refresh(ctx context.Context) error {
	if err := g.store.Reload(ctx); err != nil {
		return fmt.Errorf("refresh after mutation: %w", err)
	}
	return nil
}
