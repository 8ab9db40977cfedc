package interfaces

import (
	"context"
	"time"

	"kanalsepet/internal/domain/entities"
)

// IStateBridge pulls the live parametric state and thumbnail from the embedded
// rendering surface.
//
// RequestState resolves with the surface's reply, or with (nil, nil) when the
// timeout budget elapses first. Timeout is not an error: callers add the item
// without parameters/thumbnail. The bridge never retries and never resolves a
// single request twice.
type IStateBridge interface {
	RequestState(ctx context.Context, timeout time.Duration) (*entities.SurfaceState, error)
}
