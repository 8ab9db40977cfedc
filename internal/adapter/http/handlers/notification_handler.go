package handlers

import (
	"net/http"

	response "kanalsepet/internal/adapter/http/dto/response"
	"kanalsepet/internal/infrastructure/notify"
	"kanalsepet/internal/infrastructure/realtime"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the active notification list, manual dismissal
// and the UI event stream.
type NotificationHandler struct {
	hub    *realtime.Hub
	center *notify.Center
}

func NewNotificationHandler(hub *realtime.Hub, center *notify.Center) *NotificationHandler {
	return &NotificationHandler{hub: hub, center: center}
}

// Events attaches a UI client to the server-sent event stream. Everything
// except bridge traffic flows here: notifications, cart updates, flow phase
// changes, display updates.
func (h *NotificationHandler) Events(c *gin.Context) {
	client := h.hub.NewClient()
	h.hub.Subscribe(client, realtime.ChannelUI)
	defer h.hub.RemoveClient(client)
	h.hub.Serve(c.Writer, c.Request, client)
}

func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromNotifications(h.center.Active()))
}

// Dismiss removes a notification by id. Dismissing an already-expired id is
// still a success.
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	h.center.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}
