package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/sns-timeline/internal/api/middleware"
	"github.com/d60-Lab/sns-timeline/pkg/response"
)

// Footprints lists recent grouped visits to the viewer's own profile.
func (h *Handler) Footprints(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	visits, err := h.footprints.RecentVisits(c.Request.Context(), viewer.ID, h.pageFootprints)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, gin.H{"footprints": visits})
}
