package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code is a typed error code classifying client-visible failures.
type Code string

const (
	// CodeNetwork is a transport-level failure (unreachable host, timeout).
	CodeNetwork Code = "NETWORK_ERROR"
	// CodeAPI is a non-success status with a server-supplied message.
	CodeAPI Code = "API_ERROR"
	// CodeNotFound is a 404 on a single-entity fetch.
	CodeNotFound Code = "NOT_FOUND"
	// CodeUnauthorized covers 401/403 responses.
	CodeUnauthorized Code = "UNAUTHORIZED"
	// CodeDecode is a malformed success payload.
	CodeDecode Code = "DECODE_ERROR"
)

// Error is the structured failure every client operation returns. All
// failures are meant to surface as user-facing transient notifications;
// none propagate as panics.
type Error struct {
	Code    Code
	Status  int // HTTP status, 0 for transport failures
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

// IsNotFound reports whether err is a 404 API error.
func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == CodeNotFound
}

// Message extracts a display message from any error returned by the
// client, falling back to err.Error().
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return err.Error()
}

// decodeError turns a non-2xx response body into an *Error.
func decodeError(status int, raw []byte) *Error {
	msg := extractMessage(raw)
	if msg == "" {
		msg = http.StatusText(status)
	}

	code := CodeAPI
	switch status {
	case http.StatusNotFound:
		code = CodeNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		code = CodeUnauthorized
	}

	return &Error{Code: code, Status: status, Message: msg}
}

// extractMessage pulls the server message out of an error body. The
// collaborator returns {"message": ...} where message may be a plain
// string or a list of validation messages; the first element is used.
// Non-JSON bodies degrade to their raw text.
func extractMessage(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return trimmed
	}
	if len(body.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(body.Message, &single); err == nil {
		return single
	}
	var list []string
	if err := json.Unmarshal(body.Message, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}
