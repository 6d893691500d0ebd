package validators

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Kaleth2216/FadeApp/internal/httperr"
)

const (
	CodeMissingFields = "missing_fields"
	CodeInvalidEmail  = "invalid_email"
	CodeWeakPassword  = "weak_password"
	CodeInvalidValue  = "invalid_value"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates a request model against its `validate` tags and turns
// the first failure into a user-facing validation error.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return httperr.ErrValidation(CodeInvalidValue, "Datos inválidos.")
	}

	// Missing fields are reported before format problems.
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return httperr.ErrValidation(CodeMissingFields, "Completa todos los campos obligatorios.")
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "email":
		return httperr.ErrValidation(CodeInvalidEmail, "El correo electrónico no es válido.")
	case "min":
		if strings.EqualFold(fe.Field(), "Password") {
			return httperr.ErrValidation(CodeWeakPassword, "La contraseña debe tener al menos 6 caracteres.")
		}
	}
	return httperr.ErrValidation(CodeInvalidValue, "Datos inválidos.")
}

// NormalizeEmail trims and lower-cases an address before it is sent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
