package handlers

import (
	"net/http"

	request "kanalsepet/internal/adapter/http/dto/request"
	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/infrastructure/bridge"
	"kanalsepet/internal/infrastructure/realtime"
	"kanalsepet/internal/platform/logger"
	"kanalsepet/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSurfacePayload = pkg.NewDomainErrorSimple("INVALID_SURFACE_INPUT", "Invalid surface message", http.StatusBadRequest)

// SurfaceHandler is the HTTP side of the cross-frame protocol. The rendering
// surface listens on an SSE stream for getState requests and posts its
// messages back over plain HTTP.
type SurfaceHandler struct {
	hub    *realtime.Hub
	bridge *bridge.Bridge
	log    *logger.Logger
}

func NewSurfaceHandler(hub *realtime.Hub, br *bridge.Bridge, log *logger.Logger) *SurfaceHandler {
	return &SurfaceHandler{hub: hub, bridge: br, log: log.With("component", "surface_handler")}
}

// Events attaches the rendering surface to its event stream.
func (h *SurfaceHandler) Events(c *gin.Context) {
	client := h.hub.NewClient()
	h.hub.Subscribe(client, realtime.ChannelSurface)
	defer h.hub.RemoveClient(client)
	h.hub.Serve(c.Writer, c.Request, client)
}

// PostMessage ingests one message from the surface. Unknown types are
// dropped with a warning; a malformed envelope is the only hard error.
func (h *SurfaceHandler) PostMessage(c *gin.Context) {
	var payload request.SurfaceMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSurfacePayload.HTTPStatus, errInvalidSurfacePayload.ToHTTPError())
		return
	}

	switch payload.Type {
	case request.SurfaceMessageState:
		h.bridge.Resolve(payload.RequestID, &entities.SurfaceState{
			Params: payload.Params,
			Thumb:  payload.Thumb,
		})
	case request.SurfaceMessageChildReady:
		h.log.Info("surface ready", "title", payload.Title)
	case request.SurfaceMessageDimensionsUpdate:
		h.hub.Broadcast(realtime.Message{
			Channel: realtime.ChannelUI,
			Event:   realtime.EventDisplayUpdate,
			Data:    payload.ResolveDimensions(),
		})
	default:
		h.log.Warn("unknown surface message type", "type", payload.Type)
	}
	c.Status(http.StatusAccepted)
}
