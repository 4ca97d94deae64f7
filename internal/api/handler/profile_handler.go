package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/sns-timeline/internal/api/middleware"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/pkg/response"
)

// Profile renders another user's profile page and marks a footprint.
func (h *Handler) Profile(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	accountName := c.Param("account_name")

	view, err := h.timeline.Profile(c.Request.Context(), viewer, accountName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.footprints.RecordVisit(c.Request.Context(), view.Owner.ID, viewer.ID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, view)
}

type profileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Sex       string `json:"sex"`
	Birthday  string `json:"birthday"`
	Pref      int    `json:"pref" binding:"prefcode"`
}

// UpdateProfile upserts the viewer's own profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	accountName := c.Param("account_name")

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	profile := &model.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Sex:       req.Sex,
		Birthday:  req.Birthday,
		Pref:      req.Pref,
	}
	if err := h.profile.Update(c.Request.Context(), viewer, accountName, profile); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, profile)
}
