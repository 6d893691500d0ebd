package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

const (
	CancelTitle     = "Cancelar cita"
	CancelPrompt    = "¿Seguro que deseas cancelar esta cita?"
	CancelledTitle  = "Cita cancelada"
	CancelledMsg    = "Tu cita ha sido cancelada correctamente."
	CancelFailedMsg = "No se pudo cancelar la cita. Intenta nuevamente."
)

var (
	ErrNoPendingCancel = errors.New("booking: no cancellation requested")
	ErrUnknownEntry    = httperr.ErrValidation("appointment_not_found", "La cita no está en tu lista.")
)

type Deleter interface {
	Delete(ctx context.Context, id int64) error
}

// CancelFlow holds a list of appointments and cancels entries in two steps:
// RequestCancel records the intent, Confirm sends the delete.
type CancelFlow struct {
	api Deleter
	log zerolog.Logger

	mu      sync.Mutex
	list    []models.Appointment
	pending int64
}

func NewCancelFlow(api Deleter, log zerolog.Logger) *CancelFlow {
	return &CancelFlow{api: api, log: log.With().Str("component", "cancel").Logger()}
}

func (f *CancelFlow) SetList(list []models.Appointment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append([]models.Appointment(nil), list...)
	f.pending = 0
}

func (f *CancelFlow) List() []models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Appointment(nil), f.list...)
}

func (f *CancelFlow) RequestCancel(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.index(id) < 0 {
		return ErrUnknownEntry
	}
	f.pending = id
	return nil
}

func (f *CancelFlow) Pending() (int64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending, f.pending != 0
}

func (f *CancelFlow) Abort() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = 0
}

// Confirm deletes the requested entry. On success it is removed from the
// local list without a re-fetch; on failure the list is left as it was.
func (f *CancelFlow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	id := f.pending
	f.pending = 0
	f.mu.Unlock()

	if id == 0 {
		return ErrNoPendingCancel
	}

	if err := f.api.Delete(ctx, id); err != nil {
		f.log.Warn().Err(err).Int64("appointment_id", id).Msg("cancel failed")
		return httperr.User(CancelFailedMsg, err)
	}

	f.mu.Lock()
	if i := f.index(id); i >= 0 {
		f.list = append(f.list[:i], f.list[i+1:]...)
	}
	f.mu.Unlock()
	return nil
}

func (f *CancelFlow) index(id int64) int {
	for i, a := range f.list {
		if a.ID == id {
			return i
		}
	}
	return -1
}
