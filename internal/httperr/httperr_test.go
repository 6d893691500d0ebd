package httperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "server message",
			err:  NewAPIError(http.StatusConflict, "POST", "/appointments", Body{Message: "Horario ocupado"}),
			want: "Horario ocupado",
		},
		{
			name: "server error field",
			err:  NewAPIError(http.StatusForbidden, "POST", "/appointments", Body{Error: "Forbidden"}),
			want: "Forbidden",
		},
		{
			name: "message wins over error",
			err:  NewAPIError(http.StatusBadRequest, "POST", "/x", Body{Message: "m", Error: "e"}),
			want: "m",
		},
		{
			name: "empty server body",
			err:  NewAPIError(http.StatusInternalServerError, "GET", "/x", Body{}),
			want: "fallback",
		},
		{
			name: "network error",
			err:  &NetworkError{Method: "GET", Path: "/x", Err: context.DeadlineExceeded},
			want: "fallback",
		},
		{
			name: "validation",
			err:  ErrValidation("time_required", "Elige una hora para continuar."),
			want: "Elige una hora para continuar.",
		},
		{
			name: "wrapped user error",
			err:  fmt.Errorf("submit: %w", User("No se pudo", nil)),
			want: "No se pudo",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, "fallback"); got != tt.want {
				t.Fatalf("Message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageDefaultFallback(t *testing.T) {
	err := &NetworkError{Method: "GET", Path: "/x", Err: errors.New("refused")}
	if got := Message(err, ""); got != GenericMessage {
		t.Fatalf("Message = %q, want generic", got)
	}
}

func TestMessageHidesStatusLine(t *testing.T) {
	ae := NewAPIError(http.StatusBadGateway, "POST", "/appointments", Body{})
	err := fmt.Errorf("create: %w", ae)
	if got := Message(err, "Intenta nuevamente."); got != "Intenta nuevamente." {
		t.Fatalf("Message = %q, want fallback", got)
	}
	if got := Message(err, "Intenta nuevamente."); got == ae.Error() {
		t.Fatalf("status line %q shown to the user", got)
	}
}

func TestIsValidation(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrValidation("incomplete_selection", "x"))
	if !IsValidation(err, "incomplete_selection") {
		t.Fatalf("IsValidation = false")
	}
	if IsValidation(err, "other") {
		t.Fatalf("IsValidation matched wrong code")
	}
}

func TestIsStatus(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewAPIError(http.StatusNotFound, "GET", "/x", Body{}))
	if !IsStatus(err, http.StatusNotFound) {
		t.Fatalf("IsStatus = false")
	}
}
