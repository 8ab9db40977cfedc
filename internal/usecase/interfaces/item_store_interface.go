package interfaces

import (
	"context"

	"kanalsepet/internal/domain/entities"
)

// IItemStore is the capability set both persistence backends satisfy: the
// synchronous small-quota legacy file store and the transactional large-quota
// stores (sqlite, dynamodb).
//
// Contract notes:
//   - Add enforces id uniqueness.
//   - Remove of an absent id is a no-op, not an error.
//   - GetAll returns items in insertion (timestamp) order.
//   - Get returns a zero-value item when the id is absent.
//   - EstimateUsage is advisory only; backends that cannot report return a
//     zeroed estimate and no operation gates on it.
type IItemStore interface {
	Add(ctx context.Context, item entities.OrderItem) error
	Update(ctx context.Context, item entities.OrderItem) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.OrderItem, error)
	GetAll(ctx context.Context) ([]entities.OrderItem, error)
	Clear(ctx context.Context) error
	EstimateUsage(ctx context.Context) (entities.UsageEstimate, error)
	SaveNames(ctx context.Context, projectName, zoneName string) error
	LoadNames(ctx context.Context) (projectName, zoneName string, err error)
}

// ILegacyStore is the small-quota blob backend's extra surface used by the
// one-way migration into a transactional backend.
type ILegacyStore interface {
	IItemStore

	// HasLegacyData reports whether a legacy blob still exists on disk.
	HasLegacyData() bool
	// MigratedIDs returns the ids already copied into the target backend by a
	// previous, possibly interrupted, migration run.
	MigratedIDs() map[string]bool
	// MarkMigrated durably records that an item reached the target backend.
	MarkMigrated(ctx context.Context, id string) error
	// Delete removes the legacy blob once every item is marked migrated.
	Delete(ctx context.Context) error
}
