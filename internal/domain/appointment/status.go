package appointment

import (
	"strings"

	"github.com/Kaleth2216/FadeApp/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCancelled  Status = "CANCELLED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

var labels = map[Status]string{
	StatusPending:    "Pendiente",
	StatusConfirmed:  "Confirmada",
	StatusCancelled:  "Cancelada",
	StatusInProgress: "En curso",
	StatusCompleted:  "Completada",
}

// Normalize maps a raw status to a known one. The server omits the field
// for freshly created appointments, which are pending.
func Normalize(raw string) Status {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if s == "" {
		return StatusPending
	}
	return s
}

func Parse(raw string) (Status, error) {
	s := Normalize(raw)
	if _, ok := labels[s]; !ok {
		return "", httperr.ErrValidation("invalid_status", "Estado de cita desconocido.")
	}
	return s, nil
}

func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return "Desconocido"
}

func IsPending(raw string) bool {
	return Normalize(raw) == StatusPending
}

// ===============================
// Transitions
// ===============================

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

// CanTransition reports whether the server may move an appointment from
// current to next. Cancelled and completed are terminal.
func CanTransition(current, next Status) error {
	for _, s := range transitions[current] {
		if s == next {
			return nil
		}
	}
	return httperr.ErrValidation("invalid_state", "Transición de estado no permitida.")
}

// InitialStatus is what every new booking is submitted with.
func InitialStatus() Status {
	return StatusPending
}
