package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the API answers 401: the session cookie is
// missing or expired. Callers redirect to re-authentication; nothing here
// performs navigation.
var ErrUnauthorized = errors.New("not authenticated")

// NetworkError wraps a transport-level failure: the request never produced an
// HTTP response at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-401, non-2xx response from the API.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (HTTP %d)", e.Status)
}

// IsNetwork reports whether err is a connectivity failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
