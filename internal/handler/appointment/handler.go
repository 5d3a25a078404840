package appointment

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinichq/clinic-api/internal/model"
	"github.com/clinichq/clinic-api/internal/service/appointment"
	"github.com/clinichq/clinic-api/pkg/apperrors"
	"github.com/clinichq/clinic-api/pkg/httputil"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PATCH("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation(err.Error()))
		return
	}

	if err := h.service.Create(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusCreated, "Appointment created successfully", nil)
}

// ListAppointments returns the appointments of the week containing
// the ?date= query parameter, echoing the resolved window in the
// message.
func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, window, err := h.service.ListWeek(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.Error(err)
		return
	}

	message := fmt.Sprintf("Appointments from %s", window)
	httputil.Respond(c, http.StatusOK, message, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Appointment fetched successfully", a)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation(err.Error()))
		return
	}

	a, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Appointment updated successfully", a)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Appointment deleted successfully", nil)
}
