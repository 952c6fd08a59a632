package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/wanjala-dev/duetrack/internal/model"
)

// Client talks to the deadline-tracker REST API. Credentials ride on the
// session cookie captured at login; the jar holds it for every later call.
type Client struct {
	base *url.URL
	hc   *http.Client
	loc  *time.Location
}

// New builds a client for the API at baseURL. loc is the reference timezone
// for the wall-clock due_date wire format.
func New(baseURL string, loc *time.Location) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{base: u, hc: &http.Client{Jar: jar}, loc: loc}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Status: resp.StatusCode, Message: readAPIError(resp.Body)}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// readAPIError pulls the message out of the API's {"error": "..."} shape.
func readAPIError(r io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

// ListAssignments fetches every assignment for the logged-in user.
func (c *Client) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	var wire []wireAssignment
	if err := c.do(ctx, http.MethodGet, "/assignments", nil, &wire); err != nil {
		return nil, err
	}
	out := make([]model.Assignment, 0, len(wire))
	for _, w := range wire {
		a, err := w.toModel(c.loc)
		if err != nil {
			return nil, fmt.Errorf("malformed assignment record: %w", err)
		}
		out = append(out, a)
	}
	return out, nil
}

// GetAssignment fetches a single assignment, used to prefill the edit form.
func (c *Client) GetAssignment(ctx context.Context, id int) (model.Assignment, error) {
	var w wireAssignment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/assignments/%d", id), nil, &w); err != nil {
		return model.Assignment{}, err
	}
	return w.toModel(c.loc)
}

// CreateAssignment posts a new assignment and returns the created record.
func (c *Client) CreateAssignment(ctx context.Context, body AssignmentBody) (model.Assignment, error) {
	var w wireAssignment
	if err := c.do(ctx, http.MethodPost, "/assignments", body.toWire(c.loc), &w); err != nil {
		return model.Assignment{}, err
	}
	return w.toModel(c.loc)
}

// UpdateAssignment replaces every field of an existing assignment.
func (c *Client) UpdateAssignment(ctx context.Context, id int, body AssignmentBody) (model.Assignment, error) {
	var w wireAssignment
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/assignments/%d", id), body.toWire(c.loc), &w); err != nil {
		return model.Assignment{}, err
	}
	return w.toModel(c.loc)
}

// PatchStatus changes only the status of an assignment.
func (c *Client) PatchStatus(ctx context.Context, id int, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/assignments/%d", id), body, nil)
}

// DeleteAssignment removes an assignment.
func (c *Client) DeleteAssignment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/assignments/%d", id), nil, nil)
}

// Statistics fetches the server-computed aggregate.
func (c *Client) Statistics(ctx context.Context) (Statistics, error) {
	var s Statistics
	if err := c.do(ctx, http.MethodGet, "/assignments/statistics", nil, &s); err != nil {
		return Statistics{}, err
	}
	return s, nil
}

// Login authenticates and captures the session cookie in the client's jar.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}

// Register creates an account. The API sends a verification email; the
// session is not established until the user logs in.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) error {
	body := map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   password,
	}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Profile returns the logged-in user, or ErrUnauthorized when the session
// cookie is absent or stale.
func (c *Client) Profile(ctx context.Context) (User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// ForgotPassword asks the API to send a reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", body, nil)
}

// VerifyEmail confirms an address with the token from the verification email.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/auth/verify-email/"+url.PathEscape(token), nil, nil)
}
