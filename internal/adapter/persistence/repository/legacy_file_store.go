package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/platform/logger"
	"kanalsepet/internal/usecase/interfaces"
)

const defaultLegacyStorePath = "kanalsepet_order.json"

// legacyBlob is the whole-file payload of the small-quota backend. MigratedIDs
// carries the per-item migration markers that make the legacy→transactional
// migration resumable.
type legacyBlob struct {
	ProjectName string               `json:"project_name"`
	ZoneName    string               `json:"zone_name"`
	Items       []entities.OrderItem `json:"items"`
	MigratedIDs []string             `json:"migrated_ids,omitempty"`
}

// LegacyFileStore persists the whole order sheet as one JSON blob on disk.
//
// It is the localStorage-style small-capacity backend: every write rewrites
// the full blob synchronously. A malformed or absent file reads as an empty
// default record; read failures never reach callers as errors.
type LegacyFileStore struct {
	mu   sync.Mutex
	path string
	log  *logger.Logger
}

var _ interfaces.ILegacyStore = (*LegacyFileStore)(nil)

func NewLegacyFileStore(log *logger.Logger) *LegacyFileStore {
	return &LegacyFileStore{
		path: getenvDefault("LEGACY_STORE_PATH", defaultLegacyStorePath),
		log:  log.With("component", "legacy_store"),
	}
}

func NewLegacyFileStoreAt(path string, log *logger.Logger) *LegacyFileStore {
	return &LegacyFileStore{path: path, log: log.With("component", "legacy_store")}
}

func (s *LegacyFileStore) read() legacyBlob {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("legacy blob unreadable, using empty record", "path", s.path, "err", err)
		}
		return legacyBlob{}
	}
	var blob legacyBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		s.log.Warn("legacy blob malformed, using empty record", "path", s.path, "err", err)
		return legacyBlob{}
	}
	return blob
}

func (s *LegacyFileStore) write(blob legacyBlob) error {
	raw, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o640)
}

func (s *LegacyFileStore) Add(_ context.Context, item entities.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := s.read()
	for _, it := range blob.Items {
		if it.ID == item.ID {
			return ErrDuplicateItemID
		}
	}
	item.Quantity = entities.ClampQuantity(item.Quantity)
	blob.Items = append(blob.Items, item)
	return s.write(blob)
}

func (s *LegacyFileStore) Update(_ context.Context, item entities.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := s.read()
	for i, it := range blob.Items {
		if it.ID == item.ID {
			item.Quantity = entities.ClampQuantity(item.Quantity)
			blob.Items[i] = item
			return s.write(blob)
		}
	}
	return ErrItemNotFound
}

func (s *LegacyFileStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := s.read()
	kept := blob.Items[:0]
	for _, it := range blob.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(blob.Items) {
		return nil
	}
	blob.Items = kept
	return s.write(blob)
}

func (s *LegacyFileStore) Get(_ context.Context, id string) (entities.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.read().Items {
		if it.ID == id {
			return it, nil
		}
	}
	return entities.OrderItem{}, nil
}

func (s *LegacyFileStore) GetAll(_ context.Context) ([]entities.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().Items, nil
}

func (s *LegacyFileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := s.read()
	blob.Items = nil
	return s.write(blob)
}

func (s *LegacyFileStore) EstimateUsage(_ context.Context) (entities.UsageEstimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, err := os.Stat(s.path)
	if err != nil {
		// Advisory only: report zeroes instead of failing.
		return entities.UsageEstimate{}, nil
	}
	return entities.UsageEstimate{
		UsedBytes: info.Size(),
		ItemCount: len(s.read().Items),
	}, nil
}

func (s *LegacyFileStore) SaveNames(_ context.Context, projectName, zoneName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := s.read()
	blob.ProjectName = projectName
	blob.ZoneName = zoneName
	return s.write(blob)
}

func (s *LegacyFileStore) LoadNames(_ context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := s.read()
	return blob.ProjectName, blob.ZoneName, nil
}

func (s *LegacyFileStore) HasLegacyData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); err != nil {
		return false
	}
	blob := s.read()
	return len(blob.Items) > 0 || blob.ProjectName != "" || blob.ZoneName != ""
}

func (s *LegacyFileStore) MigratedIDs() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]bool)
	for _, id := range s.read().MigratedIDs {
		ids[id] = true
	}
	return ids
}

func (s *LegacyFileStore) MarkMigrated(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := s.read()
	for _, existing := range blob.MigratedIDs {
		if existing == id {
			return nil
		}
	}
	blob.MigratedIDs = append(blob.MigratedIDs, id)
	return s.write(blob)
}

func (s *LegacyFileStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
