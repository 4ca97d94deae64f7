package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/sns-timeline/pkg/response"
)

// Initialize truncates load-generated rows back to the seeded baseline.
// Stays outside the auth gate so the benchmark harness can call it first.
func (h *Handler) Initialize(c *gin.Context) {
	if err := h.admin.Initialize(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, nil)
}
