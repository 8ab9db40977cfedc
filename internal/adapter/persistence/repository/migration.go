package repository

import (
	"context"
	"errors"

	"kanalsepet/internal/platform/logger"
	"kanalsepet/internal/usecase/interfaces"
)

// MigrateLegacy copies a legacy blob store into a transactional target, once,
// one way. It is best-effort towards the session: no error ever escapes.
//
// Resumability: each item id is durably marked in the legacy blob right after
// it reaches the target, and marked items are skipped on the next run. An
// interrupted migration therefore neither loses the legacy data nor inserts
// an item twice. The legacy blob is deleted only when every item is marked.
func MigrateLegacy(ctx context.Context, legacy interfaces.ILegacyStore, target interfaces.IItemStore, log *logger.Logger) {
	log = log.With("component", "migration")

	if !legacy.HasLegacyData() {
		return
	}

	items, err := legacy.GetAll(ctx)
	if err != nil {
		log.Warn("legacy read failed, keeping legacy data", "err", err)
		return
	}
	projectName, zoneName, err := legacy.LoadNames(ctx)
	if err != nil {
		log.Warn("legacy names read failed, keeping legacy data", "err", err)
		return
	}

	migrated := legacy.MigratedIDs()
	done := 0
	for _, item := range items {
		if migrated[item.ID] {
			done++
			continue
		}
		err := target.Add(ctx, item)
		if err != nil && !errors.Is(err, ErrDuplicateItemID) {
			// Partial failure: keep the legacy blob (markers included) so the
			// next session resumes from here.
			log.Warn("migration interrupted, legacy data preserved",
				"migrated", done, "total", len(items), "item_id", item.ID, "err", err)
			return
		}
		if err := legacy.MarkMigrated(ctx, item.ID); err != nil {
			log.Warn("migration marker write failed, legacy data preserved",
				"item_id", item.ID, "err", err)
			return
		}
		done++
	}

	if projectName != "" || zoneName != "" {
		if err := target.SaveNames(ctx, projectName, zoneName); err != nil {
			log.Warn("migration of session labels failed, legacy data preserved", "err", err)
			return
		}
	}

	if err := legacy.Delete(ctx); err != nil {
		log.Warn("legacy blob delete failed", "err", err)
		return
	}
	log.Info("legacy store migrated", "items", done)
}
