package resumes

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"peso-backend/internal/documents"
	"peso-backend/internal/shared/server/middleware"
	"peso-backend/internal/shared/server/respond"
	"peso-backend/internal/textextract"
	"peso-backend/resume/model"
)

const maxUploadSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/parse", h.parse)
	rg.GET("/resumes/current", h.current)
	rg.PUT("/resumes/current", h.save)
	rg.GET("/resumes/current/download", h.download)
}

func (h *Handler) parse(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF files are accepted", nil)
		return
	}

	result, err := h.Svc.Parse(c.Request.Context(), userID, fileHeader.Filename, payload)
	if err != nil {
		switch {
		case errors.Is(err, textextract.ErrUnreadable):
			respond.Error(c, http.StatusUnprocessableEntity, "unreadable_document",
				"could not extract text from the document", nil)
		case errors.Is(err, documents.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse resume", nil)
		}
		return
	}
	respond.OK(c, ParseResponse{Data: result.Data, UsedOCR: result.UsedOCR})
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	record, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no resume yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}
	respond.OK(c, toResponse(record))
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var data model.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume payload", nil)
		return
	}

	record, err := h.Svc.Save(c.Request.Context(), userID, data)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error",
				"resume failed validation", vErr.Fields)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save resume", nil)
		}
		return
	}
	respond.OK(c, toResponse(record))
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	fileName, rc, err := h.Svc.Download(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no resume yet", nil)
		case errors.Is(err, ErrNotSaved):
			respond.Error(c, http.StatusConflict, "not_saved", "save the resume before downloading", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open resume pdf", nil)
		}
		return
	}
	defer rc.Close()

	payload, err := io.ReadAll(rc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read resume pdf", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Length", strconv.Itoa(len(payload)))
	c.Data(http.StatusOK, "application/pdf", payload)
}
