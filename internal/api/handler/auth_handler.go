package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/sns-timeline/internal/api/middleware"
	"github.com/d60-Lab/sns-timeline/pkg/response"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials, populates the identity cache and hands out the
// session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	token, err := middleware.IssueToken(h.jwtSecret, user.ID, time.Duration(h.tokenTTL)*time.Second)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token, "user": user})
}

// Logout exists for client symmetry; the session lives in the token, so the
// server has nothing to drop.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, nil)
}
