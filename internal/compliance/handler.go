package compliance

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"peso-backend/internal/shared/server/middleware"
	"peso-backend/internal/shared/server/respond"
)

const maxAttachmentSize = 10 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterEmployerRoutes attaches the employer-side routes.
func (h *Handler) RegisterEmployerRoutes(rg *gin.RouterGroup) {
	rg.GET("/compliance", h.listMine)
	rg.POST("/compliance/:id/submit", h.submit)
}

// RegisterAdminRoutes attaches the review routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/compliance", h.open)
	rg.GET("/admin/compliance", h.listByStatus)
	rg.POST("/admin/compliance/:id/review", h.review)
	rg.GET("/admin/compliance/:id/file", h.download)
}

func (h *Handler) listMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.Svc.ListMine(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list compliance items", nil)
		return
	}
	if items == nil {
		items = []Item{}
	}
	respond.OK(c, gin.H{"items": items})
}

func (h *Handler) submit(c *gin.Context) {
	var reader io.Reader
	fileName := ""
	if fileHeader, err := c.FormFile("file"); err == nil {
		if fileHeader.Size > maxAttachmentSize {
			respond.Error(c, http.StatusBadRequest, "file_too_large", "attachment exceeds the 10 MB limit", nil)
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_upload", "could not read uploaded file", nil)
			return
		}
		defer f.Close()
		reader = f
		fileName = fileHeader.Filename
	}

	item, err := h.Svc.Submit(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), fileName, reader)
	if err != nil {
		h.respondComplianceError(c, err, "failed to submit compliance item")
		return
	}
	respond.OK(c, item)
}

func (h *Handler) open(c *gin.Context) {
	var req struct {
		EmployerID string `json:"employerId"`
		Kind       string `json:"kind"`
		Title      string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid compliance payload", nil)
		return
	}

	item, err := h.Svc.Open(c.Request.Context(), req.EmployerID, req.Kind, req.Title)
	if err != nil {
		h.respondComplianceError(c, err, "failed to create compliance item")
		return
	}
	respond.JSON(c, http.StatusCreated, item)
}

func (h *Handler) listByStatus(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.Svc.ListByStatus(c.Request.Context(), c.DefaultQuery("status", StatusSubmitted), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list compliance items", nil)
		return
	}
	if items == nil {
		items = []Item{}
	}
	respond.OK(c, gin.H{"items": items})
}

func (h *Handler) review(c *gin.Context) {
	var req struct {
		Verdict string `json:"verdict"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid review payload", nil)
		return
	}

	item, err := h.Svc.Review(c.Request.Context(), c.Param("id"), req.Verdict, req.Notes)
	if err != nil {
		h.respondComplianceError(c, err, "failed to review compliance item")
		return
	}
	respond.OK(c, item)
}

func (h *Handler) download(c *gin.Context) {
	rc, err := h.Svc.OpenAttachment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondComplianceError(c, err, "failed to open attachment")
		return
	}
	defer rc.Close()

	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) respondComplianceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "compliance item not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "not your compliance item", nil)
	case errors.Is(err, ErrNoAttachment):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
