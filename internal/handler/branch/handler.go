package branch

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinichq/clinic-api/internal/model"
	"github.com/clinichq/clinic-api/internal/service/branch"
	"github.com/clinichq/clinic-api/pkg/apperrors"
	"github.com/clinichq/clinic-api/pkg/httputil"
)

type Handler struct {
	service *branch.Service
}

func NewHandler(service *branch.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	branches := r.Group("/branches")
	{
		branches.POST("", h.CreateBranch)
		branches.GET("", h.ListBranches)
	}
}

func (h *Handler) CreateBranch(c *gin.Context) {
	var req model.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation(err.Error()))
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusCreated, "", b)
}

func (h *Handler) ListBranches(c *gin.Context) {
	branches, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "", branches)
}
