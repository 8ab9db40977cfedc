package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/infrastructure/bridge"
	"kanalsepet/internal/infrastructure/realtime"
	"kanalsepet/internal/platform/logger"

	"github.com/gin-gonic/gin"
)

func newSurfaceRouter(t *testing.T) (*gin.Engine, *realtime.Hub, *bridge.Bridge) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := realtime.NewHub(logger.NewNop())
	br := bridge.New(hub, logger.NewNop())
	h := NewSurfaceHandler(hub, br, logger.NewNop())

	r := gin.New()
	r.POST("/v1/surface/messages", h.PostMessage)
	return r, hub, br
}

func TestSurfaceHandler_PostMessage(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newSurfaceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/surface/messages", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing type", func(t *testing.T) {
		r, _, _ := newSurfaceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/surface/messages", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("state reply resolves a pending bridge request", func(t *testing.T) {
		r, hub, br := newSurfaceRouter(t)

		// Attach a surface client so the getState emission can be observed.
		client := hub.NewClient()
		hub.Subscribe(client, realtime.ChannelSurface)
		defer hub.RemoveClient(client)

		type result struct {
			state *entities.SurfaceState
			err   error
		}
		done := make(chan result, 1)
		go func() {
			state, err := br.RequestState(httptest.NewRequest(http.MethodGet, "/", nil).Context(), time.Second)
			done <- result{state, err}
		}()

		var requestID string
		select {
		case msg := <-client.Outbound:
			if msg.Event != realtime.EventGetState {
				t.Fatalf("unexpected event: %s", msg.Event)
			}
			requestID = msg.Data.(bridge.StateRequest).RequestID
		case <-time.After(time.Second):
			t.Fatal("no getState emission")
		}

		body, _ := json.Marshal(map[string]any{
			"type":       "state",
			"request_id": requestID,
			"params":     map[string]string{"w": "200"},
			"thumb":      "thumb",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/surface/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}

		select {
		case res := <-done:
			if res.err != nil {
				t.Fatalf("unexpected error: %v", res.err)
			}
			if res.state == nil || res.state.Thumb != "thumb" {
				t.Fatalf("unexpected state: %+v", res.state)
			}
			if string(res.state.Params["w"]) != `"200"` {
				t.Fatalf("unexpected params: %+v", res.state.Params)
			}
		case <-time.After(time.Second):
			t.Fatal("bridge request did not resolve")
		}
	})

	t.Run("child ready is accepted", func(t *testing.T) {
		r, _, _ := newSurfaceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/surface/messages",
			bytes.NewBufferString(`{"type":"child-ready","title":"Dirsek 90"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("dimensions update forwards to the UI stream", func(t *testing.T) {
		r, hub, _ := newSurfaceRouter(t)

		ui := hub.NewClient()
		hub.Subscribe(ui, realtime.ChannelUI)
		defer hub.RemoveClient(ui)

		req := httptest.NewRequest(http.MethodPost, "/v1/surface/messages",
			bytes.NewBufferString(`{"type":"dimensions-update","dimensions":{"w":200,"h":150,"l":1000},"area":{"outer":1.2}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}

		select {
		case msg := <-ui.Outbound:
			if msg.Event != realtime.EventDisplayUpdate {
				t.Fatalf("unexpected event: %s", msg.Event)
			}
			update := msg.Data.(entities.SurfaceDimensions)
			if update.Dimensions.W != 200 || update.Dimensions.H != 150 || update.Dimensions.L != 1000 {
				t.Fatalf("dimensions dropped from display update: %+v", update)
			}
			if update.Area.Outer != 1.2 {
				t.Fatalf("area dropped from display update: %+v", update)
			}
		case <-time.After(time.Second):
			t.Fatal("no display-update broadcast")
		}
	})

	t.Run("dimensions update without area still forwards", func(t *testing.T) {
		r, hub, _ := newSurfaceRouter(t)

		ui := hub.NewClient()
		hub.Subscribe(ui, realtime.ChannelUI)
		defer hub.RemoveClient(ui)

		req := httptest.NewRequest(http.MethodPost, "/v1/surface/messages",
			bytes.NewBufferString(`{"type":"dimensions-update","dimensions":{"w":100,"h":100,"l":500}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}

		select {
		case msg := <-ui.Outbound:
			update := msg.Data.(entities.SurfaceDimensions)
			if update.Dimensions.W != 100 || update.Area.Outer != 0 {
				t.Fatalf("unexpected display update: %+v", update)
			}
		case <-time.After(time.Second):
			t.Fatal("no display-update broadcast")
		}
	})

	t.Run("unknown type is dropped, still accepted", func(t *testing.T) {
		r, _, _ := newSurfaceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/surface/messages",
			bytes.NewBufferString(`{"type":"telemetry"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}
