package locations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peso-backend/internal/shared/server/respond"
)

// Handler serves the location reference to the resume form.
type Handler struct {
	Ref *Reference
}

// NewHandler constructs a Handler.
func NewHandler(ref *Reference) *Handler {
	return &Handler{Ref: ref}
}

// RegisterRoutes attaches location routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locations/regions", h.regions)
	rg.GET("/locations/regions/:code/provinces", h.provinces)
	rg.GET("/locations/provinces/:code/cities", h.cities)
	rg.GET("/locations/cities/:code/barangays", h.barangays)
}

func (h *Handler) regions(c *gin.Context) {
	respond.OK(c, gin.H{"regions": h.Ref.Regions()})
}

func (h *Handler) provinces(c *gin.Context) {
	entries := h.Ref.Provinces(c.Param("code"))
	if entries == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "unknown region code", nil)
		return
	}
	respond.OK(c, gin.H{"provinces": entries})
}

func (h *Handler) cities(c *gin.Context) {
	entries := h.Ref.Cities(c.Param("code"))
	if entries == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "unknown province code", nil)
		return
	}
	respond.OK(c, gin.H{"cities": entries})
}

func (h *Handler) barangays(c *gin.Context) {
	entries := h.Ref.Barangays(c.Param("code"))
	if entries == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "unknown city code", nil)
		return
	}
	respond.OK(c, gin.H{"barangays": entries})
}
