package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidToken is returned when a bearer token is missing, malformed, or
// cannot be resolved to an identity by the auth platform.
var ErrInvalidToken = errors.New("invalid token")

// ErrInvalidCredentials is returned on sign-in failure. The upstream detail is
// deliberately discarded so the client cannot tell which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is returned when a single-row read matches nothing.
var ErrNotFound = errors.New("record not found")

// StoreError is any non-2xx response from the remote data store or the auth
// platform's sign-up endpoint. Body carries the upstream response verbatim and
// is surfaced to the client as the error detail.
type StoreError struct {
	StatusCode int
	Body       string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("upstream store: status %d: %s", e.StatusCode, e.Body)
}

// GenerationError is a failure of the generative-text upstream.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}
