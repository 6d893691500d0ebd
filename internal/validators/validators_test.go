package validators

import (
	"testing"

	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

func TestStruct(t *testing.T) {
	ok := models.RegisterClientRequest{
		FirstName: "Ana", LastName: "Ruiz", City: "Neiva",
		Email: "ana@example.com", Password: "secreto",
	}

	tests := []struct {
		name string
		in   any
		code string
	}{
		{"valid", ok, ""},
		{"missing last name", func() any { r := ok; r.LastName = ""; return r }(), CodeMissingFields},
		{"bad email", func() any { r := ok; r.Email = "ana"; return r }(), CodeInvalidEmail},
		{"short password", func() any { r := ok; r.Password = "123"; return r }(), CodeWeakPassword},
		{"service without duration", models.CreateServiceRequest{Name: "Corte", Price: 10}, CodeInvalidValue},
		{"barber without phone", models.CreateBarberRequest{Name: "Luis"}, CodeMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Struct: %v", err)
				}
				return
			}
			if !httperr.IsValidation(err, tt.code) {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}
