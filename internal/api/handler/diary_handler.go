package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/sns-timeline/internal/api/middleware"
	"github.com/d60-Lab/sns-timeline/pkg/response"
)

// DiaryEntries lists an owner's recent entries, privacy-gated, and marks a
// footprint on the owner's profile.
func (h *Handler) DiaryEntries(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	accountName := c.Param("account_name")

	view, err := h.timeline.Diary(c.Request.Context(), viewer, accountName)
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

// DiaryEntry renders a single entry with its comments.
func (h *Handler) DiaryEntry(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	entryID, err := strconv.ParseInt(c.Param("entry_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	view, err := h.timeline.Entry(c.Request.Context(), viewer, entryID)
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

type postEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Private bool   `json:"private"`
}

// PostEntry creates a diary entry owned by the viewer.
func (h *Handler) PostEntry(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	var req postEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entry, err := h.diary.PostEntry(c.Request.Context(), viewer.ID, req.Title, req.Content, req.Private)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, entry)
}

type postCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// PostComment comments on an entry; private parents require permission.
func (h *Handler) PostComment(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	entryID, err := strconv.ParseInt(c.Param("entry_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}
	var req postCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.diary.PostComment(c.Request.Context(), viewer.ID, entryID, req.Comment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, comment)
}
