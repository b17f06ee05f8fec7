// Package api defines the error taxonomy shared by all data backends.
//
// Classification policy: HTTP 401 is an AuthError and always locally
// recoverable (treat as anonymous); any other non-2xx is a StatusError
// carrying the status and the server-supplied message when present; a
// request that could not complete at all is a NetworkError.
package api

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError indicates the backend rejected the request as unauthenticated
// (HTTP 401). Callers special-case it versus generic failure.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "not authenticated"
	}
	return e.Message
}

// Status always reports http.StatusUnauthorized
func (e *AuthError) Status() int { return http.StatusUnauthorized }

// StatusError is any other non-2xx response, carrying the HTTP status and
// the server-supplied message when present
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// NetworkError indicates the request could not complete
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsAuthError reports whether err is (or wraps) an AuthError
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsNetworkError reports whether err is (or wraps) a NetworkError
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
