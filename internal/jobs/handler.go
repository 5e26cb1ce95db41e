package jobs

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

// RegisterPublicRoutes attaches the public browsing routes.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.browse)
	rg.GET("/jobs/:id", h.get)
}

// RegisterEmployerRoutes attaches the employer posting routes.
func (h *Handler) RegisterEmployerRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.create)
	rg.PUT("/jobs/:id", h.update)
	rg.POST("/jobs/:id/close", h.close)
	rg.GET("/employer/jobs", h.listMine)
}

// RegisterAdminRoutes attaches the moderation routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/jobs/pending", h.listPending)
	rg.POST("/admin/jobs/:id/approve", h.approve)
	rg.POST("/admin/jobs/:id/close", h.adminClose)
}

func (h *Handler) browse(c *gin.Context) {
	filter := Filter{
		Keyword:    c.Query("q"),
		Category:   c.Query("category"),
		JobType:    c.Query("jobType"),
		RegionCode: c.Query("regionCode"),
		CityCode:   c.Query("cityCode"),
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	jobsList, err := h.Svc.Browse(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to search jobs", nil)
		return
	}
	if jobsList == nil {
		jobsList = []Job{}
	}
	respond.OK(c, gin.H{"jobs": jobsList})
}

func (h *Handler) get(c *gin.Context) {
	job, err := h.Svc.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load job", nil)
		return
	}
	respond.OK(c, job)
}

func (h *Handler) create(c *gin.Context) {
	var input Job
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job payload", nil)
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), middleware.UserIDFromContext(c), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, job)
}

func (h *Handler) update(c *gin.Context) {
	var input Job
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job payload", nil)
		return
	}

	job, err := h.Svc.Update(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), input)
	if err != nil {
		h.respondJobError(c, err, "failed to update job")
		return
	}
	respond.OK(c, job)
}

func (h *Handler) close(c *gin.Context) {
	job, err := h.Svc.Close(c.Request.Context(), middleware.UserIDFromContext(c), false, c.Param("id"))
	if err != nil {
		h.respondJobError(c, err, "failed to close job")
		return
	}
	respond.OK(c, job)
}

func (h *Handler) listMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	jobsList, err := h.Svc.ListMine(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}
	if jobsList == nil {
		jobsList = []Job{}
	}
	respond.OK(c, gin.H{"jobs": jobsList})
}

func (h *Handler) listPending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	jobsList, err := h.Svc.ListPending(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list pending jobs", nil)
		return
	}
	if jobsList == nil {
		jobsList = []Job{}
	}
	respond.OK(c, gin.H{"jobs": jobsList})
}

func (h *Handler) approve(c *gin.Context) {
	job, err := h.Svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondJobError(c, err, "failed to approve job")
		return
	}
	respond.OK(c, job)
}

func (h *Handler) adminClose(c *gin.Context) {
	job, err := h.Svc.Close(c.Request.Context(), middleware.UserIDFromContext(c), true, c.Param("id"))
	if err != nil {
		h.respondJobError(c, err, "failed to close job")
		return
	}
	respond.OK(c, job)
}

func (h *Handler) respondJobError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "not your job posting", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
