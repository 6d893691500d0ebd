package screens

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/booking"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/session"
	"github.com/Kaleth2216/FadeApp/internal/timezone"
)

type fakeCreator struct {
	err  error
	sent []models.CreateAppointmentRequest
}

func (f *fakeCreator) Create(_ context.Context, in models.CreateAppointmentRequest) (*models.Appointment, error) {
	f.sent = append(f.sent, in)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Appointment{ID: 1, Date: in.Date, Status: in.Status}, nil
}

func newCreateScreen(api *fakeCreator, s session.Session) (*AppointmentCreate, *fakeUI, *HomeClient) {
	today := time.Date(2026, 10, 14, 8, 0, 0, 0, time.FixedZone("COT", -5*3600))
	wf := booking.NewWorkflow(api, &staticSession{s: s}, timezone.Fixed(today), zerolog.Nop())
	ui := &fakeUI{}
	home := NewHomeClient(&fakeCityLister{}, zerolog.Nop())
	return NewAppointmentCreate(wf, ui, home), ui, home
}

var clientSession = session.Session{Token: "t", Role: session.RoleClient, UserID: 4}

func TestAppointmentCreateSuccess(t *testing.T) {
	api := &fakeCreator{}
	s, ui, home := newCreateScreen(api, clientSession)

	s.Begin(booking.Selection{BarbershopID: 1, ServiceID: 2, BarberID: 3})
	if err := s.SelectDate("2026-10-15"); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	if err := s.SelectTime("10:30"); err != nil {
		t.Fatalf("SelectTime: %v", err)
	}
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(api.sent) != 1 || api.sent[0].Date != "2026-10-15T10:30:00" || api.sent[0].Client.ID != 4 {
		t.Fatalf("sent = %+v", api.sent)
	}
	if ui.last() != (alert{booking.SuccessTitle, booking.SuccessMsg}) {
		t.Fatalf("alert = %+v", ui.last())
	}
	if !home.TakeOpenAppointments() {
		t.Fatalf("home not asked to open appointments")
	}
}

func TestAppointmentCreateAlerts(t *testing.T) {
	tests := []struct {
		name  string
		sess  session.Session
		sel   booking.Selection
		time  string
		err   error
		title string
		msg   string
	}{
		{"incomplete", clientSession, booking.Selection{BarbershopID: 1}, "", nil, booking.IncompleteTitle, ""},
		{"no time", clientSession, booking.Selection{BarbershopID: 1, ServiceID: 2, BarberID: 3}, "", nil, booking.TimeRequiredTitle, ""},
		{"server", clientSession, booking.Selection{BarbershopID: 1, ServiceID: 2, BarberID: 3}, "09:00", &httperr.APIError{Status: 500}, booking.SubmitFailedTitle, booking.SubmitFailedMsg},
		{"server message", clientSession, booking.Selection{BarbershopID: 1, ServiceID: 2, BarberID: 3}, "09:00", httperr.User("Horario no disponible.", nil), booking.SubmitFailedTitle, "Horario no disponible."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeCreator{err: tt.err}
			s, ui, home := newCreateScreen(api, tt.sess)
			s.Begin(tt.sel)
			if tt.time != "" {
				_ = s.SelectTime(tt.time)
			}

			if _, err := s.Submit(context.Background()); err == nil {
				t.Fatalf("expected error")
			}
			got := ui.last()
			if got.Title != tt.title || (tt.msg != "" && got.Message != tt.msg) {
				t.Fatalf("alert = %+v", got)
			}
			if home.TakeOpenAppointments() {
				t.Fatalf("appointments requested after failure")
			}
		})
	}
}

func TestAppointmentCreateRejectsUnknownSlot(t *testing.T) {
	s, ui, _ := newCreateScreen(&fakeCreator{}, clientSession)
	s.Begin(booking.Selection{BarbershopID: 1, ServiceID: 2, BarberID: 3})
	if err := s.SelectTime("19:30"); err == nil || ui.last().Title != booking.TimeRequiredTitle {
		t.Fatalf("err = %v, alert = %+v", err, ui.last())
	}
	if len(s.Times()) != 21 || len(s.Dates()) != booking.DayCount {
		t.Fatalf("times = %d, dates = %d", len(s.Times()), len(s.Dates()))
	}
}
