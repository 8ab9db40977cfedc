package bridge

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/infrastructure/realtime"
	"kanalsepet/internal/platform/logger"
)

// capturePublisher records getState emissions so tests can answer them.
type capturePublisher struct {
	requests chan StateRequest
	attached bool
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{requests: make(chan StateRequest, 4), attached: true}
}

func (p *capturePublisher) Broadcast(msg realtime.Message) {
	if req, ok := msg.Data.(StateRequest); ok {
		p.requests <- req
	}
}

func (p *capturePublisher) HasSubscribers(string) bool { return p.attached }

func TestBridge_RequestState(t *testing.T) {
	t.Run("resolved within budget", func(t *testing.T) {
		pub := newCapturePublisher()
		b := New(pub, logger.NewNop())

		go func() {
			req := <-pub.requests
			b.Resolve(req.RequestID, &entities.SurfaceState{
				Params: entities.ParamMap{"w": json.RawMessage(`"200"`)},
				Thumb:  "thumb",
			})
		}()

		state, err := b.RequestState(context.Background(), time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state == nil || state.Thumb != "thumb" {
			t.Fatalf("unexpected state: %+v", state)
		}
	})

	t.Run("timeout yields nil state, nil error", func(t *testing.T) {
		pub := newCapturePublisher()
		b := New(pub, logger.NewNop())

		start := time.Now()
		state, err := b.RequestState(context.Background(), 50*time.Millisecond)
		if err != nil {
			t.Fatalf("timeout must not be an error: %v", err)
		}
		if state != nil {
			t.Fatalf("expected nil state, got %+v", state)
		}
		if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
			t.Fatalf("returned before the budget elapsed: %v", elapsed)
		}
	})

	t.Run("waits full budget when no surface attached", func(t *testing.T) {
		pub := newCapturePublisher()
		pub.attached = false
		b := New(pub, logger.NewNop())

		start := time.Now()
		state, err := b.RequestState(context.Background(), 50*time.Millisecond)
		if err != nil || state != nil {
			t.Fatalf("expected nil, nil; got %+v, %v", state, err)
		}
		if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
			t.Fatalf("returned before the budget elapsed: %v", elapsed)
		}
	})

	t.Run("context cancel", func(t *testing.T) {
		pub := newCapturePublisher()
		b := New(pub, logger.NewNop())

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-pub.requests
			cancel()
		}()

		_, err := b.RequestState(ctx, time.Second)
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("late reply after timeout is dropped", func(t *testing.T) {
		pub := newCapturePublisher()
		b := New(pub, logger.NewNop())

		state, err := b.RequestState(context.Background(), 20*time.Millisecond)
		if err != nil || state != nil {
			t.Fatalf("expected timeout, got %+v, %v", state, err)
		}

		req := <-pub.requests
		// Must not panic or leak into a later request.
		b.Resolve(req.RequestID, &entities.SurfaceState{Thumb: "late"})
	})

	t.Run("unknown request id is dropped", func(t *testing.T) {
		b := New(newCapturePublisher(), logger.NewNop())
		b.Resolve("no-such-request", &entities.SurfaceState{})
	})

	t.Run("second reply for the same request is dropped", func(t *testing.T) {
		pub := newCapturePublisher()
		b := New(pub, logger.NewNop())

		go func() {
			req := <-pub.requests
			b.Resolve(req.RequestID, &entities.SurfaceState{Thumb: "first"})
			b.Resolve(req.RequestID, &entities.SurfaceState{Thumb: "second"})
		}()

		state, err := b.RequestState(context.Background(), time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Thumb != "first" {
			t.Fatalf("expected first reply to win, got %q", state.Thumb)
		}
	})
}
