package usecase

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/platform/logger"
	"kanalsepet/internal/usecase/interfaces"
)

var (
	ErrNoPendingSelection = errors.New("no pending part selection")
	ErrFlowBusy           = errors.New("add-to-cart flow already confirming")
)

// FlowPhase is the add-to-cart interaction state.
//
// Idle → AwaitingQuantity → Bridging → Committed|Failed → Idle
type FlowPhase string

const (
	PhaseIdle             FlowPhase = "idle"
	PhaseAwaitingQuantity FlowPhase = "awaiting_quantity"
	PhaseBridging         FlowPhase = "bridging"
	PhaseCommitted        FlowPhase = "committed"
	PhaseFailed           FlowPhase = "failed"
)

const (
	defaultBridgeTimeout = 800 * time.Millisecond
	revertAfter          = time.Second
)

// PartSelection is the catalog metadata of the part being added.
type PartSelection struct {
	Key      string
	Label    string
	URL      string
	Material string
}

// ICartFlowUseCase runs one add-to-cart interaction at a time.
//
// Confirm asks the state bridge for the live configuration inside a fixed
// timeout budget, builds the full line item, and only then commits it to the
// order sheet. A bridge timeout is not an error: the item goes in without
// parameters/thumbnail. A commit failure surfaces as an error notification
// and leaves the cart untouched.
type ICartFlowUseCase interface {
	Open(part PartSelection)
	SetQuantity(q int)
	Cancel()
	Confirm(ctx context.Context, note string) (entities.OrderItem, error)
	Submit(ctx context.Context, part PartSelection, qty int, note string) (entities.OrderItem, error)
	Phase() FlowPhase
	Quantity() int
}

type CartFlowUseCase struct {
	mu       sync.Mutex
	orders   IOrderUseCase
	bridge   interfaces.IStateBridge
	notifier interfaces.INotifier
	log      *logger.Logger

	timeout time.Duration
	phase   FlowPhase
	part    PartSelection
	qty     int

	// onPhase fires on every transition so the UI can render the
	// loading/success/error affordances.
	onPhase func(FlowPhase)
	// after is swappable in tests.
	after func(d time.Duration, f func()) *time.Timer
}

var _ ICartFlowUseCase = (*CartFlowUseCase)(nil)

func NewCartFlowUseCase(orders IOrderUseCase, bridge interfaces.IStateBridge, notifier interfaces.INotifier, log *logger.Logger) *CartFlowUseCase {
	return &CartFlowUseCase{
		orders:   orders,
		bridge:   bridge,
		notifier: notifier,
		log:      log.With("component", "cart_flow"),
		timeout:  bridgeTimeoutFromEnv(),
		phase:    PhaseIdle,
		qty:      entities.MinQuantity,
		after:    time.AfterFunc,
	}
}

// OnPhase registers the transition hook. Wire-up only.
func (u *CartFlowUseCase) OnPhase(fn func(FlowPhase)) {
	u.onPhase = fn
}

// Open starts (or restarts) the flow for a part: quantity resets to 1 and the
// quantity prompt is considered open. Ignored while a confirm is in flight.
func (u *CartFlowUseCase) Open(part PartSelection) {
	u.mu.Lock()
	if u.phase == PhaseBridging {
		u.mu.Unlock()
		return
	}
	u.part = part
	u.qty = entities.MinQuantity
	u.setPhaseLocked(PhaseAwaitingQuantity)
	u.mu.Unlock()
}

// SetQuantity clamps on every edit; out-of-range input never sticks.
func (u *CartFlowUseCase) SetQuantity(q int) {
	u.mu.Lock()
	u.qty = entities.ClampQuantity(q)
	u.mu.Unlock()
}

// Cancel discards the pending selection. The cart is untouched.
func (u *CartFlowUseCase) Cancel() {
	u.mu.Lock()
	if u.phase == PhaseAwaitingQuantity {
		u.part = PartSelection{}
		u.qty = entities.MinQuantity
		u.setPhaseLocked(PhaseIdle)
	}
	u.mu.Unlock()
}

func (u *CartFlowUseCase) Phase() FlowPhase {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.phase
}

func (u *CartFlowUseCase) Quantity() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.qty
}

func (u *CartFlowUseCase) Confirm(ctx context.Context, note string) (entities.OrderItem, error) {
	u.mu.Lock()
	switch u.phase {
	case PhaseAwaitingQuantity:
	case PhaseBridging:
		u.mu.Unlock()
		return entities.OrderItem{}, ErrFlowBusy
	default:
		u.mu.Unlock()
		return entities.OrderItem{}, ErrNoPendingSelection
	}
	part := u.part
	qty := entities.ClampQuantity(u.qty)
	u.setPhaseLocked(PhaseBridging)
	u.mu.Unlock()

	return u.confirm(ctx, part, qty, note)
}

// Submit runs one whole interaction in a single step: select, set quantity,
// confirm. The selection travels by value through the confirm path, so a
// concurrent Open cannot repoint a commit that is already in flight.
func (u *CartFlowUseCase) Submit(ctx context.Context, part PartSelection, qty int, note string) (entities.OrderItem, error) {
	qty = entities.ClampQuantity(qty)

	u.mu.Lock()
	if u.phase == PhaseBridging {
		u.mu.Unlock()
		return entities.OrderItem{}, ErrFlowBusy
	}
	u.part = part
	u.qty = qty
	u.setPhaseLocked(PhaseBridging)
	u.mu.Unlock()

	return u.confirm(ctx, part, qty, note)
}

// confirm drives the bridge round trip and the commit for an already-captured
// selection. Callers must have moved the phase to Bridging.
func (u *CartFlowUseCase) confirm(ctx context.Context, part PartSelection, qty int, note string) (entities.OrderItem, error) {
	// The bridge call suspends this flow, never the rest of the service.
	state, err := u.bridge.RequestState(ctx, u.timeout)
	if err != nil {
		// Context canceled mid-request: discard the attempt, cart untouched.
		u.finish(PhaseIdle, false)
		return entities.OrderItem{}, err
	}

	draft := ItemDraft{
		Key:      part.Key,
		Label:    part.Label,
		URL:      part.URL,
		Material: part.Material,
		Quantity: qty,
		Note:     note,
	}
	if state != nil {
		draft.Parameters = state.Params
		draft.Thumbnail = state.Thumb
	} else {
		u.log.Debug("surface state unavailable, adding without parameters", "part", part.Key)
	}

	item, err := u.orders.AddItem(ctx, draft)
	if err != nil {
		u.log.Error("add-to-cart commit failed", "part", part.Key, "err", err)
		u.notifier.Error("Parça sepete eklenemedi", err.Error())
		u.finish(PhaseFailed, true)
		return entities.OrderItem{}, err
	}

	u.finish(PhaseCommitted, true)
	return item, nil
}

// finish settles a confirm attempt and schedules the auto-revert to idle for
// the transient success/error visual states.
func (u *CartFlowUseCase) finish(phase FlowPhase, revert bool) {
	u.mu.Lock()
	u.part = PartSelection{}
	u.qty = entities.MinQuantity
	u.setPhaseLocked(phase)
	u.mu.Unlock()

	if revert {
		u.after(revertAfter, func() {
			u.mu.Lock()
			if u.phase == phase {
				u.setPhaseLocked(PhaseIdle)
			}
			u.mu.Unlock()
		})
	}
}

func (u *CartFlowUseCase) setPhaseLocked(phase FlowPhase) {
	u.phase = phase
	if u.onPhase != nil {
		u.onPhase(phase)
	}
}

func bridgeTimeoutFromEnv() time.Duration {
	v := strings.TrimSpace(os.Getenv("BRIDGE_TIMEOUT_MS"))
	if v == "" {
		return defaultBridgeTimeout
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return defaultBridgeTimeout
	}
	return time.Duration(ms) * time.Millisecond
}
