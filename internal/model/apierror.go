package model

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// APIError is the uniform failure shape every call resolves to, whether the
// server supplied a structured payload or the transport failed outright.
type APIError struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// FieldError returns the server-supplied message for a form field, if any.
func (e *APIError) FieldError(field string) (string, bool) {
	msg, ok := e.Errors[field]
	return msg, ok
}

func statusIs(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}
	return false
}

// IsConflict reports whether err is a 409 response. The reaction-add path
// reinterprets this as "already reacted" rather than a failure.
func IsConflict(err error) bool { return statusIs(err, http.StatusConflict) }

func IsUnauthorized(err error) bool { return statusIs(err, http.StatusUnauthorized) }

func IsNotFound(err error) bool { return statusIs(err, http.StatusNotFound) }
