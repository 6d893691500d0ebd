package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/domain/appointment"
	"github.com/Kaleth2216/FadeApp/internal/httpresp"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

const appointmentsPath = "/appointments"

type Appointments struct {
	c   *apiclient.Client
	log zerolog.Logger
}

func (a *Appointments) Create(ctx context.Context, in models.CreateAppointmentRequest) (*models.Appointment, error) {
	in.Status = string(appointment.Normalize(in.Status))

	var out models.Appointment
	if err := a.c.Post(ctx, appointmentsPath, in, &out); err != nil {
		return nil, fail(a.log, "create_appointment", err, "Intenta nuevamente.")
	}
	return &out, nil
}

// Mine lists the appointments of the authenticated client.
func (a *Appointments) Mine(ctx context.Context) ([]models.Appointment, error) {
	var raw []byte
	if err := a.c.Get(ctx, appointmentsPath+"/me", nil, &raw); err != nil {
		return nil, fail(a.log, "my_appointments", err, "Error al obtener citas del cliente")
	}
	return httpresp.DecodeList[models.Appointment](raw), nil
}

func (a *Appointments) Get(ctx context.Context, id int64) (*models.Appointment, error) {
	var out models.Appointment
	if err := a.c.Get(ctx, appointmentPath(id), nil, &out); err != nil {
		return nil, fail(a.log, "get_appointment", err, "Error al obtener la cita")
	}
	return &out, nil
}

func (a *Appointments) Delete(ctx context.Context, id int64) error {
	if err := a.c.Delete(ctx, appointmentPath(id)); err != nil {
		return fail(a.log, "delete_appointment", err, "No se pudo cancelar la cita. Intenta nuevamente.")
	}
	return nil
}

// UpdateStatus rejects unknown statuses before any request is made.
func (a *Appointments) UpdateStatus(ctx context.Context, id int64, status string) (*models.Appointment, error) {
	st, err := appointment.Parse(status)
	if err != nil {
		return nil, err
	}

	var out models.Appointment
	body := models.UpdateStatusRequest{Status: string(st)}
	if err := a.c.Put(ctx, appointmentPath(id)+"/status", body, &out); err != nil {
		return nil, fail(a.log, "update_appointment_status", err, "No se pudo actualizar la cita")
	}
	return &out, nil
}

func appointmentPath(id int64) string {
	return fmt.Sprintf("%s/%d", appointmentsPath, id)
}

