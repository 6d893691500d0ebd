package appointment

import "testing"

func TestNormalize(t *testing.T) {
	tests := map[string]Status{
		"":            StatusPending,
		"pending":     StatusPending,
		" CONFIRMED ": StatusConfirmed,
		"in_progress": StatusInProgress,
	}
	for raw, want := range tests {
		if got := Normalize(raw); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	if _, err := Parse("ARCHIVED"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if s, err := Parse("completed"); err != nil || s != StatusCompleted {
		t.Fatalf("Parse(completed) = %q, %v", s, err)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}
	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if (err == nil) != tt.ok {
			t.Fatalf("CanTransition(%s, %s) = %v, want ok=%v", tt.from, tt.to, err, tt.ok)
		}
	}
}

func TestLabels(t *testing.T) {
	if StatusPending.Label() != "Pendiente" {
		t.Fatalf("Label = %q", StatusPending.Label())
	}
	if Status("X").Label() != "Desconocido" {
		t.Fatalf("unknown label = %q", Status("X").Label())
	}
	if !IsPending("") || IsPending("CONFIRMED") {
		t.Fatalf("IsPending misclassified")
	}
}
