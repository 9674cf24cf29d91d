package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is the single failure value surfaced by the request executor.
//
// Status carries the HTTP status code of the backend response, or 0 when the
// failure happened before a response was obtained (connection refused, DNS,
// timeout). Data holds the raw JSON payload of a non-success response, when
// the backend sent one, for caller inspection.
type Error struct {
	Message string
	Status  int
	Data    json.RawMessage
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("tablefront: %s", e.Message)
	}
	return fmt.Sprintf("tablefront: %s (status %d)", e.Message, e.Status)
}

// AsError unwraps err into *Error, reporting whether it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransportError reports whether err is a status-0 failure raised before an
// HTTP response was obtained. Servers cannot legitimately produce status 0,
// so this never misclassifies a backend response.
func IsTransportError(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == 0
}

// IsStatus reports whether err is an API error with the given HTTP status.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == status
}

// transportError wraps a pre-response failure into the structured error.
// An error that is already a *Error passes through unchanged.
func transportError(err error) *Error {
	if apiErr, ok := AsError(err); ok {
		return apiErr
	}
	msg := "request failed"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Message: msg, Status: 0}
}
