package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/domain/appointment"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/session"
	"github.com/Kaleth2216/FadeApp/internal/timezone"
)

var ErrSubmitInFlight = errors.New("booking: submission already in flight")

type Creator interface {
	Create(ctx context.Context, in models.CreateAppointmentRequest) (*models.Appointment, error)
}

type SessionSource interface {
	Session() session.Session
}

// Workflow owns one draft at a time and submits it.
type Workflow struct {
	api   Creator
	sess  SessionSource
	clock timezone.Clock
	log   zerolog.Logger

	mu       sync.Mutex
	draft    *Draft
	inFlight bool
}

func NewWorkflow(api Creator, sess SessionSource, clock timezone.Clock, log zerolog.Logger) *Workflow {
	return &Workflow{
		api:   api,
		sess:  sess,
		clock: clock,
		log:   log.With().Str("component", "booking").Logger(),
	}
}

// Begin starts a fresh draft for sel, replacing any previous one.
func (w *Workflow) Begin(sel Selection) *Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = NewDraft(sel, w.clock.Now())
	return w.draft
}

func (w *Workflow) Draft() *Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

func (w *Workflow) Dates() []DateOption {
	return Dates(w.clock.Now())
}

func (w *Workflow) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

// Submit sends the current draft. Validation and session problems never
// reach the network. The draft is dropped only on success.
func (w *Workflow) Submit(ctx context.Context) (*models.Appointment, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	d := w.draft
	if err := d.Validate(); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	s := w.sess.Session()
	if !s.Present() {
		w.mu.Unlock()
		return nil, ErrLoginRequired
	}
	date, err := d.Timestamp(w.clock.Now().Location())
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.inFlight = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.inFlight = false
		w.mu.Unlock()
	}()

	req := models.CreateAppointmentRequest{
		Date:       date,
		Status:     string(appointment.InitialStatus()),
		Barber:     models.Ref{ID: d.BarberID},
		Service:    models.Ref{ID: d.ServiceID},
		Barbershop: models.Ref{ID: d.BarbershopID},
		Client:     models.Ref{ID: s.UserID},
	}
	w.log.Debug().Str("date", date).Int64("barber_id", d.BarberID).Msg("submitting appointment")

	created, err := w.api.Create(ctx, req)
	if err != nil {
		w.log.Warn().Err(err).Msg("appointment not created")
		return nil, httperr.User(httperr.Message(err, SubmitFailedMsg), err)
	}

	w.mu.Lock()
	if w.draft == d {
		w.draft = nil
	}
	w.mu.Unlock()
	return created, nil
}
