package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinichq/clinic-api/pkg/httputil"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	httputil.Respond(c, http.StatusOK, "", gin.H{"status": "healthy"})
}
