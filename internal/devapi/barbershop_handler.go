package devapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Kaleth2216/FadeApp/internal/audit"
	"github.com/Kaleth2216/FadeApp/internal/domain/appointment"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/validators"
)

type BarbershopHandler struct {
	store *Store
	audit *audit.Dispatcher
}

// --------- Public ---------

func (h *BarbershopHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Barbershops(strings.TrimSpace(c.Query("city"))))
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	shop, err := h.store.Barbershop(id)
	if err != nil {
		notFound(c, "barbershop_not_found", "Barbería no encontrada.")
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) Services(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.Services(id))
}

func (h *BarbershopHandler) ActiveBarbers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.ActiveBarbers(id))
}

// --------- Owner ---------

func (h *BarbershopHandler) AddService(c *gin.Context) {
	shopID, ok := h.ownedShop(c)
	if !ok {
		return
	}

	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if err := validators.Struct(req); err != nil {
		badRequest(c, "invalid_service", httperr.Message(err, "Datos inválidos."))
		return
	}

	sv, err := h.store.AddService(shopID, models.Service{Name: req.Name, Price: req.Price, Duration: req.Duration})
	if err != nil {
		notFound(c, "barbershop_not_found", "Barbería no encontrada.")
		return
	}

	h.audit.Dispatch(audit.Event{UserID: audit.ID(shopID), Action: "service_created", Entity: "service", EntityID: audit.ID(sv.ID)})
	c.JSON(http.StatusCreated, sv)
}

func (h *BarbershopHandler) DeleteService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	shopID := currentUserID(c)
	if err := h.store.DeleteService(shopID, id); err != nil {
		notFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{UserID: audit.ID(shopID), Action: "service_deleted", Entity: "service", EntityID: audit.ID(id)})
	c.Status(http.StatusNoContent)
}

func (h *BarbershopHandler) AddBarber(c *gin.Context) {
	shopID, ok := h.ownedShop(c)
	if !ok {
		return
	}

	var req models.CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if err := validators.Struct(req); err != nil {
		badRequest(c, "invalid_barber", httperr.Message(err, "Datos inválidos."))
		return
	}

	b, err := h.store.AddBarber(shopID, models.Barber{Name: req.Name, Phone: req.Phone, Active: req.Active})
	if err != nil {
		notFound(c, "barbershop_not_found", "Barbería no encontrada.")
		return
	}

	h.audit.Dispatch(audit.Event{UserID: audit.ID(shopID), Action: "barber_created", Entity: "barber", EntityID: audit.ID(b.ID)})
	c.JSON(http.StatusCreated, b)
}

func (h *BarbershopHandler) DeleteBarber(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	shopID := currentUserID(c)
	if err := h.store.DeleteBarber(shopID, id); err != nil {
		notFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{UserID: audit.ID(shopID), Action: "barber_deleted", Entity: "barber", EntityID: audit.ID(id)})
	c.Status(http.StatusNoContent)
}

// Appointments answers with a page envelope, like the Spring backend.
func (h *BarbershopHandler) Appointments(c *gin.Context) {
	shopID, ok := h.ownedShop(c)
	if !ok {
		return
	}

	var want appointment.Status
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, err := appointment.Parse(raw)
		if err != nil {
			badRequest(c, "invalid_status", "Estado de cita desconocido.")
			return
		}
		want = st
	}

	list := h.store.Appointments(func(a models.Appointment) bool {
		if a.Barbershop == nil || a.Barbershop.ID != shopID {
			return false
		}
		return want == "" || appointment.Normalize(a.Status) == want
	})

	c.JSON(http.StatusOK, gin.H{
		"content":       list,
		"totalElements": len(list),
	})
}

// ownedShop checks that :id is the caller's own barbershop.
func (h *BarbershopHandler) ownedShop(c *gin.Context) (int64, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return 0, false
	}
	if id != currentUserID(c) {
		forbidden(c, "foreign_barbershop", "No puedes modificar otra barbería.")
		return 0, false
	}
	return id, true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return id, true
}
