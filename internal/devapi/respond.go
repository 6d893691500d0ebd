package devapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kaleth2216/FadeApp/internal/httperr"
)

func writeErr(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, httperr.Body{Code: code, Message: message})
}

func badRequest(c *gin.Context, code, message string) {
	writeErr(c, http.StatusBadRequest, code, message)
}

func notFound(c *gin.Context, code, message string) {
	writeErr(c, http.StatusNotFound, code, message)
}

func forbidden(c *gin.Context, code, message string) {
	writeErr(c, http.StatusForbidden, code, message)
}

func unauthorized(c *gin.Context, code, message string) {
	writeErr(c, http.StatusUnauthorized, code, message)
}

func internal(c *gin.Context, code, message string) {
	writeErr(c, http.StatusInternalServerError, code, message)
}
