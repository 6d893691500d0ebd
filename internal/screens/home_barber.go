package screens

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/models"
)

type BarberAPI interface {
	ByBarber(ctx context.Context, barberID int64) ([]models.Schedule, error)
}

type StatusAPI interface {
	Mine(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Appointment, error)
}

// HomeBarber shows a barber's schedules and assigned appointments.
type HomeBarber struct {
	schedules    BarberAPI
	appointments StatusAPI
	barberID     int64
	ui           UI
	log          zerolog.Logger
}

func NewHomeBarber(schedules BarberAPI, appointments StatusAPI, barberID int64, ui UI, log zerolog.Logger) *HomeBarber {
	return &HomeBarber{
		schedules:    schedules,
		appointments: appointments,
		barberID:     barberID,
		ui:           ui,
		log:          log.With().Str("screen", "home_barber").Int64("barber_id", barberID).Logger(),
	}
}

// Schedules falls back to an empty list when the request fails.
func (h *HomeBarber) Schedules(ctx context.Context) []models.Schedule {
	list, err := h.schedules.ByBarber(ctx, h.barberID)
	if err != nil {
		h.log.Warn().Err(err).Msg("error loading schedules")
		return []models.Schedule{}
	}
	return list
}

func (h *HomeBarber) Appointments(ctx context.Context) ([]models.Appointment, error) {
	list, err := h.appointments.Mine(ctx)
	if err != nil {
		alertErr(h.ui, TitleError, err, LoadAppointmentsMsg)
		return nil, err
	}
	return list, nil
}

// SetStatus moves an assigned appointment along its lifecycle.
func (h *HomeBarber) SetStatus(ctx context.Context, id int64, status string) (*models.Appointment, error) {
	a, err := h.appointments.UpdateStatus(ctx, id, status)
	if err != nil {
		alertErr(h.ui, TitleError, err, "No se pudo actualizar la cita.")
		return nil, err
	}
	return a, nil
}
