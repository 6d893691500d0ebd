package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const GenericMessage = "Error desconocido. Intenta nuevamente."

// Body mirrors the error payloads the API sends back. Either field may be set.
type Body struct {
	Code    string `json:"error_code,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// APIError is a response that arrived with a non-2xx status.
type APIError struct {
	Status  int
	Method  string
	Path    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

func NewAPIError(status int, method, path string, body Body) *APIError {
	msg := strings.TrimSpace(body.Message)
	if msg == "" {
		msg = strings.TrimSpace(body.Error)
	}
	return &APIError{Status: status, Method: method, Path: path, Message: msg}
}

// NetworkError means no response was received at all (refused, reset, timeout).
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UserError carries a message that is ready to be shown as-is.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func User(message string, cause error) error {
	return &UserError{Message: message, Err: cause}
}

func IsStatus(err error, status int) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status == status
	}
	return false
}

// Message picks the text to show for err.
// Server message, then the error's own text, then fallback.
// Transport failures never leak their raw text. An APIError without a
// server message counts as one: its own text is a method and status line,
// not something to show, so it gets the fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if fallback == "" {
		fallback = GenericMessage
	}

	var ue *UserError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}

	var ne *NetworkError
	if errors.As(err, &ne) {
		return fallback
	}

	var ae *APIError
	if errors.As(err, &ae) {
		if ae.Message != "" {
			return ae.Message
		}
		// Status line stays in logs.
		return fallback
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
