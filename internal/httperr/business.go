package httperr

import "errors"

// ValidationError is raised locally, before any request is attempted.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrValidation(code, message string) error {
	return &ValidationError{Code: code, Message: message}
}

func IsValidation(err error, code string) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}
