package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/sns-timeline/internal/api/middleware"
	"github.com/d60-Lab/sns-timeline/pkg/response"
)

// Home assembles the viewer's home timeline.
func (h *Handler) Home(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	view, err := h.timeline.Home(c.Request.Context(), viewer)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, view)
}
