package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/observability"
	"kanalsepet/internal/platform/logger"
	"kanalsepet/internal/usecase/interfaces"
)

var (
	ErrInvalidItemID   = errors.New("invalid item id")
	ErrInvalidPartKey  = errors.New("invalid part key")
	ErrInvalidMaterial = errors.New("invalid material")
)

// ItemDraft is the add-to-cart input before an id is assigned: part catalog
// metadata, the chosen material and quantity, and whatever the bridge captured.
type ItemDraft struct {
	Key        string
	Label      string
	URL        string
	Material   string
	Quantity   int
	Parameters entities.ParamMap
	Thumbnail  string
	Note       string
}

// IOrderUseCase owns the order sheet: the in-memory aggregate that is the
// single source of truth during a session.
//
//   - Load runs once at session start (after migration) and is the only point
//     where the store is read back.
//   - Every mutation persists synchronously, in mutation order; reads are
//     served from memory and never wait on storage.
//   - Derived values (summary, badge, share text) are recomputed per call,
//     never cached.
type IOrderUseCase interface {
	Load(ctx context.Context) error
	Sheet() entities.OrderSheet
	Summary() entities.Summary
	BadgeText() string
	ShareText() string
	AddItem(ctx context.Context, draft ItemDraft) (entities.OrderItem, error)
	RemoveItem(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	SetProjectName(ctx context.Context, name string) error
	SetZoneName(ctx context.Context, name string) error
	EstimateUsage(ctx context.Context) entities.UsageEstimate
}

type OrderUseCase struct {
	mu       sync.Mutex
	store    interfaces.IItemStore
	notifier interfaces.INotifier
	log      *logger.Logger
	sheet    entities.OrderSheet

	// onChange fires after each committed mutation so the HTTP layer can
	// broadcast a re-render. Reads the in-memory sheet, never the store.
	onChange func(entities.OrderSheet)
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store interfaces.IItemStore, notifier interfaces.INotifier, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		store:    store,
		notifier: notifier,
		log:      log.With("component", "order_usecase"),
	}
}

// OnChange registers the mutation hook. Wire-up only; not safe to call after
// the service starts handling requests.
func (u *OrderUseCase) OnChange(fn func(entities.OrderSheet)) {
	u.onChange = fn
}

func (u *OrderUseCase) Load(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	projectName, zoneName, err := u.store.LoadNames(ctx)
	if err != nil {
		// Fail soft: a broken read yields an empty default record.
		u.log.Warn("session labels unreadable, starting empty", "err", err)
		projectName, zoneName = "", ""
	}
	items, err := u.store.GetAll(ctx)
	if err != nil {
		u.log.Warn("persisted items unreadable, starting empty", "err", err)
		items = nil
	}
	for i := range items {
		items[i].Quantity = entities.ClampQuantity(items[i].Quantity)
	}
	u.sheet = entities.OrderSheet{ProjectName: projectName, ZoneName: zoneName, Items: items}
	observability.CartItems.Set(float64(len(items)))
	u.log.Info("order sheet loaded", "items", len(items))
	return nil
}

func (u *OrderUseCase) Sheet() entities.OrderSheet {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshot()
}

func (u *OrderUseCase) Summary() entities.Summary {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sheet.Summary()
}

func (u *OrderUseCase) BadgeText() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sheet.BadgeText()
}

func (u *OrderUseCase) ShareText() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sheet.ShareText()
}

func (u *OrderUseCase) AddItem(ctx context.Context, draft ItemDraft) (entities.OrderItem, error) {
	if strings.TrimSpace(draft.Key) == "" {
		return entities.OrderItem{}, ErrInvalidPartKey
	}
	if strings.TrimSpace(draft.Material) == "" {
		return entities.OrderItem{}, ErrInvalidMaterial
	}

	item := entities.OrderItem{
		ID:         uuid.NewString(),
		Key:        strings.TrimSpace(draft.Key),
		Label:      draft.Label,
		URL:        draft.URL,
		Material:   draft.Material,
		Quantity:   entities.ClampQuantity(draft.Quantity),
		Parameters: draft.Parameters,
		Thumbnail:  draft.Thumbnail,
		Note:       draft.Note,
		CreatedAt:  time.Now().UTC(),
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// Commit to the store first: a failed persist leaves the cart untouched.
	if err := u.store.Add(ctx, item); err != nil {
		observability.CartMutationsTotal.WithLabelValues("add", "error").Inc()
		return entities.OrderItem{}, err
	}
	u.sheet.Items = append(u.sheet.Items, item)
	observability.CartMutationsTotal.WithLabelValues("add", "ok").Inc()
	observability.CartItems.Set(float64(len(u.sheet.Items)))
	u.notifyChange()
	return item, nil
}

func (u *OrderUseCase) RemoveItem(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidItemID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	kept := make([]entities.OrderItem, 0, len(u.sheet.Items))
	for _, it := range u.sheet.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(u.sheet.Items) {
		// Absent id: no-op, not an error.
		return nil
	}
	u.sheet.Items = kept

	if err := u.store.Remove(ctx, id); err != nil {
		// In-memory state stands; durability degraded until the next persist.
		observability.CartMutationsTotal.WithLabelValues("remove", "error").Inc()
		u.log.Warn("item removal not persisted", "item_id", id, "err", err)
		u.notifier.Warning("Değişiklik kaydedilemedi", err.Error())
	} else {
		observability.CartMutationsTotal.WithLabelValues("remove", "ok").Inc()
	}
	observability.CartItems.Set(float64(len(u.sheet.Items)))
	u.notifyChange()
	return nil
}

func (u *OrderUseCase) Clear(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	// Labels survive a clear; only the items go.
	u.sheet.Items = nil

	if err := u.store.Clear(ctx); err != nil {
		observability.CartMutationsTotal.WithLabelValues("clear", "error").Inc()
		u.log.Warn("clear not persisted", "err", err)
		u.notifier.Warning("Değişiklik kaydedilemedi", err.Error())
	} else {
		observability.CartMutationsTotal.WithLabelValues("clear", "ok").Inc()
	}
	observability.CartItems.Set(0)
	u.notifyChange()
	return nil
}

func (u *OrderUseCase) SetProjectName(ctx context.Context, name string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sheet.ProjectName = name
	return u.persistNames(ctx)
}

func (u *OrderUseCase) SetZoneName(ctx context.Context, name string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sheet.ZoneName = name
	return u.persistNames(ctx)
}

func (u *OrderUseCase) EstimateUsage(ctx context.Context) entities.UsageEstimate {
	est, err := u.store.EstimateUsage(ctx)
	if err != nil {
		// Advisory only: zeroes when the backend cannot report.
		u.log.Debug("usage estimate unavailable", "err", err)
		return entities.UsageEstimate{}
	}
	return est
}

func (u *OrderUseCase) persistNames(ctx context.Context) error {
	if err := u.store.SaveNames(ctx, u.sheet.ProjectName, u.sheet.ZoneName); err != nil {
		u.log.Warn("session labels not persisted", "err", err)
		u.notifier.Warning("Değişiklik kaydedilemedi", err.Error())
	}
	u.notifyChange()
	return nil
}

func (u *OrderUseCase) notifyChange() {
	if u.onChange != nil {
		u.onChange(u.snapshot())
	}
}

// snapshot copies the sheet so callers never alias the internal item slice.
// Callers must hold u.mu.
func (u *OrderUseCase) snapshot() entities.OrderSheet {
	out := u.sheet
	out.Items = make([]entities.OrderItem, len(u.sheet.Items))
	copy(out.Items, u.sheet.Items)
	return out
}
