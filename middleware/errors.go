// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
)

const internalErrorMessage = "Internal server error"

// HandlerFunc is a handler that reports failure by returning an error
// instead of writing an error response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// HTTPError is a failure with a client-visible status and message.
// Err, when set, is logged but never sent to the client.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing resource
func NotFound(message string) error {
	return &HTTPError{Status: http.StatusNotFound, Message: message}
}

// WithErrors is the error boundary shared by every content handler.
// An *HTTPError maps to its own status; any other error is logged and
// becomes a 500 with a static message.
func WithErrors(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.Status < http.StatusInternalServerError {
			ErrorResponse(w, httpErr.Status, httpErr.Message)
			return
		}

		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", w.Header().Get(RequestIDHeader),
			"error", err,
		)
		ErrorResponse(w, http.StatusInternalServerError, internalErrorMessage)
	}
}
