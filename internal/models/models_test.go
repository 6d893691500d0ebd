package models

import (
	"testing"
	"time"
)

func TestBarbershopDisplayable(t *testing.T) {
	shop := Barbershop{
		ID: 1,
		Services: []Service{
			{ID: 1, Name: "Corte", Active: true},
			{ID: 1, Name: "Corte duplicado", Active: true},
			{ID: 2, Name: "Barba", Active: false},
			{ID: 3, Name: "Cejas", Active: true},
		},
		Barbers: []Barber{
			{ID: 7, Name: "Ana", Active: true},
			{ID: 7, Name: "Ana", Active: true},
			{ID: 8, Name: "Luis", Active: false},
		},
	}

	got := shop.Displayable()

	if len(got.Services) != 2 || got.Services[0].Name != "Corte" || got.Services[1].ID != 3 {
		t.Fatalf("services = %+v", got.Services)
	}
	if len(got.Barbers) != 1 || got.Barbers[0].ID != 7 {
		t.Fatalf("barbers = %+v", got.Barbers)
	}
	if len(shop.Services) != 4 {
		t.Fatalf("Displayable mutated the receiver")
	}
}

func TestAppointmentTime(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)

	local, err := Appointment{Date: "2026-10-14T09:30:00"}.Time(loc)
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if local.Hour() != 9 || local.Minute() != 30 || local.Location() != loc {
		t.Fatalf("local = %s", local)
	}

	zoned, err := Appointment{Date: "2026-10-14T14:30:00Z"}.Time(loc)
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if zoned.Hour() != 9 {
		t.Fatalf("zoned hour = %d, want 9", zoned.Hour())
	}

	if _, err := (Appointment{Date: "mañana"}).Time(loc); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestClientFullName(t *testing.T) {
	if got := (Client{FirstName: "Ana", LastName: "Ruiz"}).FullName(); got != "Ana Ruiz" {
		t.Fatalf("FullName = %q", got)
	}
	if got := (Client{LastName: "Ruiz"}).FullName(); got != "Ruiz" {
		t.Fatalf("FullName = %q", got)
	}
}
