package screens

import (
	"context"
	"errors"

	"github.com/Kaleth2216/FadeApp/internal/booking"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

// AppointmentCreate turns booking outcomes into alerts. After a successful
// booking the client home is asked to open "my appointments".
type AppointmentCreate struct {
	wf   *booking.Workflow
	ui   UI
	home *HomeClient
}

func NewAppointmentCreate(wf *booking.Workflow, ui UI, home *HomeClient) *AppointmentCreate {
	return &AppointmentCreate{wf: wf, ui: ui, home: home}
}

func (s *AppointmentCreate) Begin(sel booking.Selection) *booking.Draft {
	return s.wf.Begin(sel)
}

func (s *AppointmentCreate) Dates() []booking.DateOption {
	return s.wf.Dates()
}

func (s *AppointmentCreate) Times() []string {
	return booking.Times()
}

func (s *AppointmentCreate) SelectDate(key string) error {
	d := s.wf.Draft()
	if d == nil {
		s.ui.Alert(booking.IncompleteTitle, booking.ErrIncompleteSelection.Error())
		return booking.ErrIncompleteSelection
	}
	if err := d.SelectDate(key); err != nil {
		s.ui.Alert(TitleError, err.Error())
		return err
	}
	return nil
}

func (s *AppointmentCreate) SelectTime(hhmm string) error {
	d := s.wf.Draft()
	if d == nil {
		s.ui.Alert(booking.IncompleteTitle, booking.ErrIncompleteSelection.Error())
		return booking.ErrIncompleteSelection
	}
	if err := d.SelectTime(hhmm); err != nil {
		s.ui.Alert(booking.TimeRequiredTitle, err.Error())
		return err
	}
	return nil
}

func (s *AppointmentCreate) Submit(ctx context.Context) (*models.Appointment, error) {
	created, err := s.wf.Submit(ctx)
	switch {
	case err == nil:
		s.ui.Alert(booking.SuccessTitle, booking.SuccessMsg)
		if s.home != nil {
			s.home.RequestAppointments()
		}
		return created, nil
	case errors.Is(err, booking.ErrSubmitInFlight):
		// The first submission reports its own outcome.
	case errors.Is(err, booking.ErrIncompleteSelection):
		s.ui.Alert(booking.IncompleteTitle, err.Error())
	case errors.Is(err, booking.ErrTimeRequired):
		s.ui.Alert(booking.TimeRequiredTitle, err.Error())
	case errors.Is(err, booking.ErrLoginRequired):
		s.ui.Alert(TitleNoSession, err.Error())
	default:
		alertErr(s.ui, booking.SubmitFailedTitle, err, booking.SubmitFailedMsg)
	}
	return nil, err
}
