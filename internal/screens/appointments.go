package screens

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/booking"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/session"
)

const (
	TitleNoSession      = "Sesión no encontrada"
	MsgNoSession        = "Inicia sesión para ver tus citas."
	LoadAppointmentsMsg = "No se pudieron cargar tus citas. Intenta nuevamente."
)

type AppointmentsAPI interface {
	Mine(ctx context.Context) ([]models.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type SessionSource interface {
	Session() session.Session
}

// Appointments is the client's "my appointments" list.
type Appointments struct {
	api  AppointmentsAPI
	sess SessionSource
	ui   UI
	flow *booking.CancelFlow
	log  zerolog.Logger
}

func NewAppointments(api AppointmentsAPI, sess SessionSource, ui UI, log zerolog.Logger) *Appointments {
	log = log.With().Str("screen", "appointments").Logger()
	return &Appointments{api: api, sess: sess, ui: ui, flow: booking.NewCancelFlow(api, log), log: log}
}

// Load needs a token; without one the user is told to log in and nothing
// is requested.
func (a *Appointments) Load(ctx context.Context) ([]models.Appointment, error) {
	if !a.sess.Session().HasToken() {
		a.ui.Alert(TitleNoSession, MsgNoSession)
		return nil, booking.ErrLoginRequired
	}

	list, err := a.api.Mine(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("appointments not loaded")
		a.ui.Alert(TitleError, LoadAppointmentsMsg)
		return nil, err
	}
	a.flow.SetList(list)
	return a.flow.List(), nil
}

func (a *Appointments) List() []models.Appointment {
	return a.flow.List()
}

// Cancel asks for confirmation first. It reports whether the appointment
// was cancelled.
func (a *Appointments) Cancel(ctx context.Context, id int64) (bool, error) {
	if err := a.flow.RequestCancel(id); err != nil {
		alertErr(a.ui, TitleError, err, booking.CancelFailedMsg)
		return false, err
	}
	if !a.ui.Confirm(booking.CancelTitle, booking.CancelPrompt) {
		a.flow.Abort()
		return false, nil
	}

	if err := a.flow.Confirm(ctx); err != nil {
		if !errors.Is(err, booking.ErrNoPendingCancel) {
			a.ui.Alert(TitleError, booking.CancelFailedMsg)
		}
		return false, err
	}
	a.ui.Alert(booking.CancelledTitle, booking.CancelledMsg)
	return true, nil
}
