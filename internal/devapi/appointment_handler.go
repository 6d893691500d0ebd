package devapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kaleth2216/FadeApp/internal/audit"
	"github.com/Kaleth2216/FadeApp/internal/domain/appointment"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

var errForeign = errors.New("devapi: resource belongs to someone else")

type AppointmentHandler struct {
	store *Store
	audit *audit.Dispatcher
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	// The client reference is mandatory and must be the caller.
	if req.Client.ID == 0 || req.Client.ID != userID {
		forbidden(c, "client_mismatch", "No puedes crear citas para otro cliente.")
		return
	}
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		badRequest(c, "invalid_date", "Fecha u hora inválida.")
		return
	}

	a, err := h.store.CreateAppointment(req)
	switch {
	case errors.Is(err, ErrNotFound):
		badRequest(c, "invalid_reference", "Barbería, servicio o barbero inválido.")
		return
	case errors.Is(err, ErrSlotTaken):
		writeErr(c, http.StatusConflict, "slot_taken", "El barbero ya tiene una cita en ese horario.")
		return
	case err != nil:
		internal(c, "failed_to_create_appointment", "No se pudo crear la cita.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   audit.ID(userID),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: audit.ID(a.ID),
		Metadata: map[string]any{
			"date":      a.Date,
			"barber_id": a.Barber.ID,
		},
	})
	c.JSON(http.StatusCreated, a)
}

// Mine lists the caller's appointments: booked ones for clients, assigned
// ones for barbers.
func (h *AppointmentHandler) Mine(c *gin.Context) {
	userID := currentUserID(c)
	role := c.GetString(ContextUserRole)

	c.JSON(http.StatusOK, h.store.Appointments(func(a models.Appointment) bool {
		if role == "BARBER" {
			return a.Barber != nil && a.Barber.ID == userID
		}
		return a.Client != nil && a.Client.ID == userID
	}))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	a, ok := h.visible(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	a, ok := h.visible(c)
	if !ok {
		return
	}
	if c.GetString(ContextUserRole) != "CLIENT" {
		forbidden(c, "forbidden_role", "Solo el cliente puede cancelar su cita.")
		return
	}
	if err := h.store.DeleteAppointment(a.ID); err != nil {
		notFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	h.audit.Dispatch(audit.Event{UserID: audit.ID(currentUserID(c)), Action: "appointment_deleted", Entity: "appointment", EntityID: audit.ID(a.ID)})
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	a, ok := h.visible(c)
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	next, err := appointment.Parse(req.Status)
	if err != nil {
		badRequest(c, "invalid_status", "Estado de cita desconocido.")
		return
	}

	updated, err := h.store.SetAppointmentStatus(a.ID, next)
	if err != nil {
		if httperr.IsValidation(err, "invalid_state") {
			writeErr(c, http.StatusConflict, "invalid_state", "Transición de estado no permitida.")
			return
		}
		notFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   audit.ID(currentUserID(c)),
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: audit.ID(a.ID),
		Metadata: map[string]any{"from": a.Status, "to": updated.Status},
	})
	c.JSON(http.StatusOK, updated)
}

// visible loads :id and checks the caller takes part in it.
func (h *AppointmentHandler) visible(c *gin.Context) (models.Appointment, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return models.Appointment{}, false
	}
	a, err := h.store.Appointment(id)
	if err != nil {
		notFound(c, "appointment_not_found", "Cita no encontrada.")
		return models.Appointment{}, false
	}
	if participant(a, c.GetString(ContextUserRole), currentUserID(c)) != nil {
		forbidden(c, "foreign_appointment", "No tienes acceso a esta cita.")
		return models.Appointment{}, false
	}
	return a, true
}

func participant(a models.Appointment, role string, userID int64) error {
	var owner int64
	switch role {
	case "CLIENT":
		if a.Client != nil {
			owner = a.Client.ID
		}
	case "BARBER":
		if a.Barber != nil {
			owner = a.Barber.ID
		}
	case "BARBERSHOP":
		if a.Barbershop != nil {
			owner = a.Barbershop.ID
		}
	}
	if owner == 0 || owner != userID {
		return errForeign
	}
	return nil
}
