package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/sns-timeline/internal/api/middleware"
	"github.com/d60-Lab/sns-timeline/pkg/response"
)

// ListFriends returns the viewer's friends, newest first, with display data
// resolved through the identity cache.
func (h *Handler) ListFriends(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	rels, err := h.graph.ListFriends(c.Request.Context(), viewer.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ids := make([]int64, len(rels))
	for i, rel := range rels {
		ids[i] = rel.Another
	}
	users, err := h.identity.GetUsers(c.Request.Context(), ids)
	if err != nil {
		h.respondError(c, err)
		return
	}

	type friendItem struct {
		UserID      int64  `json:"user_id"`
		AccountName string `json:"account_name,omitempty"`
		NickName    string `json:"nick_name,omitempty"`
		CreatedAt   string `json:"created_at"`
	}
	list := make([]friendItem, len(rels))
	for i, rel := range rels {
		item := friendItem{UserID: rel.Another, CreatedAt: rel.CreatedAt.Format("2006-01-02 15:04:05")}
		if u, ok := users[rel.Another]; ok {
			item.AccountName = u.AccountName
			item.NickName = u.NickName
		}
		list[i] = item
	}
	response.Success(c, gin.H{"count": len(list), "friends": list})
}

// AddFriend makes the viewer and the named account friends. Idempotent.
func (h *Handler) AddFriend(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	accountName := c.Param("account_name")

	other, err := h.identity.GetUserByAccountName(c.Request.Context(), accountName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.graph.AddFriend(c.Request.Context(), viewer.ID, other.ID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, nil)
}
