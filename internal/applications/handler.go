package applications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"peso-backend/internal/shared/server/middleware"
	"peso-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterJobseekerRoutes attaches the applicant-side routes.
func (h *Handler) RegisterJobseekerRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/apply", h.apply)
	rg.GET("/applications", h.listMine)
}

// RegisterEmployerRoutes attaches the employer-side routes.
func (h *Handler) RegisterEmployerRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/:id/applications", h.listForJob)
	rg.PATCH("/applications/:id/status", h.updateStatus)
}

func (h *Handler) apply(c *gin.Context) {
	app, err := h.Svc.Apply(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		h.respondApplicationError(c, err, "failed to apply")
		return
	}
	respond.JSON(c, http.StatusCreated, app)
}

func (h *Handler) listMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	apps, err := h.Svc.ListMine(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}
	if apps == nil {
		apps = []Application{}
	}
	respond.OK(c, gin.H{"applications": apps})
}

func (h *Handler) listForJob(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	apps, err := h.Svc.ListForJob(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), limit, offset)
	if err != nil {
		h.respondApplicationError(c, err, "failed to list applicants")
		return
	}
	if apps == nil {
		apps = []Application{}
	}
	respond.OK(c, gin.H{"applications": apps})
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid status payload", nil)
		return
	}

	app, err := h.Svc.UpdateStatus(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), req.Status)
	if err != nil {
		h.respondApplicationError(c, err, "failed to update status")
		return
	}
	respond.OK(c, app)
}

func (h *Handler) respondApplicationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, ErrDuplicate):
		respond.Error(c, http.StatusConflict, "already_applied", err.Error(), nil)
	case errors.Is(err, ErrJobUnavailable):
		respond.Error(c, http.StatusConflict, "job_unavailable", err.Error(), nil)
	case errors.Is(err, ErrResumeRequired):
		respond.Error(c, http.StatusUnprocessableEntity, "resume_required", err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "not your job posting", nil)
	case errors.Is(err, ErrInvalidStatus):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
