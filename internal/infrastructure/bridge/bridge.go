package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/infrastructure/realtime"
	"kanalsepet/internal/observability"
	"kanalsepet/internal/platform/logger"
	"kanalsepet/internal/usecase/interfaces"
)

// Publisher is the outbound side of the bridge transport: the realtime hub's
// surface channel.
type Publisher interface {
	Broadcast(msg realtime.Message)
	HasSubscribers(channel string) bool
}

// StateRequest is the payload the rendering surface receives for a getState
// round trip. The request id correlates its reply.
type StateRequest struct {
	RequestID string `json:"request_id"`
}

type pending struct {
	resolved bool
	reply    chan *entities.SurfaceState
}

// Bridge pulls live parametric state from the embedded rendering surface.
//
// One getState emission per request, exactly one resolution per request: the
// first of {matching reply, timeout, context cancel} wins and the resolved
// flag drops everything after it. Late or unknown replies are logged and
// discarded. The bridge never retries; a nil result is "proceed without
// parameters/thumbnail", not a failure.
type Bridge struct {
	mu      sync.Mutex
	pending map[string]*pending
	hub     Publisher
	log     *logger.Logger
}

var _ interfaces.IStateBridge = (*Bridge)(nil)

func New(hub Publisher, log *logger.Logger) *Bridge {
	return &Bridge{
		pending: make(map[string]*pending),
		hub:     hub,
		log:     log.With("component", "bridge"),
	}
}

func (b *Bridge) RequestState(ctx context.Context, timeout time.Duration) (*entities.SurfaceState, error) {
	id := uuid.NewString()
	p := &pending{reply: make(chan *entities.SurfaceState, 1)}

	b.mu.Lock()
	b.pending[id] = p
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
	}()

	if !b.hub.HasSubscribers(realtime.ChannelSurface) {
		// Still wait the full budget: the surface may attach mid-request, and
		// callers observe the same behavior whether it is absent or mute.
		b.log.Debug("no surface attached", "request_id", id)
	}
	b.hub.Broadcast(realtime.Message{
		Channel: realtime.ChannelSurface,
		Event:   realtime.EventGetState,
		Data:    StateRequest{RequestID: id},
	})

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case state := <-p.reply:
		observability.BridgeRequestsTotal.WithLabelValues("resolved").Inc()
		return state, nil
	case <-timer.C:
		b.markResolved(id)
		observability.BridgeRequestsTotal.WithLabelValues("timeout").Inc()
		b.log.Debug("state request timed out", "request_id", id, "timeout", timeout)
		return nil, nil
	case <-ctx.Done():
		b.markResolved(id)
		observability.BridgeRequestsTotal.WithLabelValues("canceled").Inc()
		return nil, ctx.Err()
	}
}

// Resolve delivers a surface reply. Replies for unknown or already-resolved
// requests are dropped.
func (b *Bridge) Resolve(requestID string, state *entities.SurfaceState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.pending[requestID]
	if !ok || p.resolved {
		b.log.Debug("dropping late or unknown state reply", "request_id", requestID)
		return
	}
	p.resolved = true
	p.reply <- state
}

func (b *Bridge) markResolved(requestID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.pending[requestID]; ok {
		p.resolved = true
	}
}
