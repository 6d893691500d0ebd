package devapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	store *Store
}

func (h *ScheduleHandler) ByBarber(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.Schedules(id))
}
