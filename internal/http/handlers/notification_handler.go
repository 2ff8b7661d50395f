package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vadi/internal/modules/notify"
)

type NotificationHandler struct {
	sink *notify.MemorySink
}

func NewNotificationHandler(sink *notify.MemorySink) *NotificationHandler {
	return &NotificationHandler{sink: sink}
}

type notificationView struct {
	notify.Notification
	DurationMS int64 `json:"duration_ms"`
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	active := h.sink.Active()
	out := make([]notificationView, 0, len(active))
	for _, n := range active {
		out = append(out, notificationView{Notification: n, DurationMS: n.DurationMS()})
	}
	writeJSON(c, http.StatusOK, gin.H{"notifications": out})
}

// Dismiss handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	if !h.sink.Dismiss(c.Param("id")) {
		writeError(c, http.StatusNotFound, "notification not found")
		return
	}
	c.Status(http.StatusNoContent)
}
