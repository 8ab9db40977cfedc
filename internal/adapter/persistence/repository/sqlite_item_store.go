package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/platform/logger"
	"kanalsepet/internal/usecase/interfaces"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const defaultSQLitePath = "kanalsepet.db"

// SQLiteItemStore is the local large-capacity transactional backend.
//
// The single connection opens lazily on first use. Schema, created on first
// open:
//   - order_items(id TEXT PRIMARY KEY, payload BLOB NOT NULL, ts INTEGER NOT NULL)
//     with a non-unique index on ts (insertion ordering)
//   - order_meta(k TEXT PRIMARY KEY, v TEXT NOT NULL) for the session labels
//
// Items round-trip through their JSON form so the persisted record matches the
// wire shape exactly, opaque parameters included.
type SQLiteItemStore struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
	log  *logger.Logger
	now  func() time.Time
}

var _ interfaces.IItemStore = (*SQLiteItemStore)(nil)

func NewSQLiteItemStore(log *logger.Logger) *SQLiteItemStore {
	return &SQLiteItemStore{
		path: getenvDefault("SQLITE_PATH", defaultSQLitePath),
		log:  log.With("component", "sqlite_store"),
		now:  time.Now,
	}
}

func NewSQLiteItemStoreAt(path string, log *logger.Logger) *SQLiteItemStore {
	return &SQLiteItemStore{path: path, log: log.With("component", "sqlite_store"), now: time.Now}
}

// conn opens the database on first call and reuses it afterwards. Concurrent
// callers rely on sqlite's own transaction isolation, not app-level locking.
func (s *SQLiteItemStore) conn(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	schema := []string{
		`CREATE TABLE IF NOT EXISTS order_items (
			id TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			ts INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_ts ON order_items (ts)`,
		`CREATE TABLE IF NOT EXISTS order_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	s.db = db
	s.log.Debug("sqlite store opened", "path", s.path)
	return db, nil
}

func (s *SQLiteItemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteItemStore) Add(ctx context.Context, item entities.OrderItem) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	item.Quantity = entities.ClampQuantity(item.Quantity)
	payload, err := marshalItemPayload(item)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO order_items (id, payload, ts) VALUES (?, ?, ?)`,
		item.ID, payload, s.now().UnixNano())
	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return ErrDuplicateItemID
	}
	return err
}

func (s *SQLiteItemStore) Update(ctx context.Context, item entities.OrderItem) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	item.Quantity = entities.ClampQuantity(item.Quantity)
	payload, err := marshalItemPayload(item)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx,
		`UPDATE order_items SET payload = ? WHERE id = ?`, payload, item.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *SQLiteItemStore) Remove(ctx context.Context, id string) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	// Absent id: no rows affected, still a success.
	_, err = db.ExecContext(ctx, `DELETE FROM order_items WHERE id = ?`, id)
	return err
}

func (s *SQLiteItemStore) Get(ctx context.Context, id string) (entities.OrderItem, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return entities.OrderItem{}, err
	}
	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM order_items WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return entities.OrderItem{}, nil
	}
	if err != nil {
		return entities.OrderItem{}, err
	}
	return unmarshalItemPayload(payload)
}

func (s *SQLiteItemStore) GetAll(ctx context.Context) ([]entities.OrderItem, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT payload FROM order_items ORDER BY ts ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var items []entities.OrderItem
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		item, err := unmarshalItemPayload(payload)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteItemStore) Clear(ctx context.Context) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM order_items`)
	return err
}

func (s *SQLiteItemStore) EstimateUsage(ctx context.Context) (entities.UsageEstimate, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return entities.UsageEstimate{}, nil
	}
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM order_items`).Scan(&count); err != nil {
		return entities.UsageEstimate{}, nil
	}
	est := entities.UsageEstimate{ItemCount: count}
	if info, err := os.Stat(s.path); err == nil {
		est.UsedBytes = info.Size()
	}
	return est, nil
}

func (s *SQLiteItemStore) SaveNames(ctx context.Context, projectName, zoneName string) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for k, v := range map[string]string{"project_name": projectName, "zone_name": zoneName} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_meta (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
			k, v); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteItemStore) LoadNames(ctx context.Context) (string, string, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return "", "", err
	}
	names := map[string]string{}
	rows, err := db.QueryContext(ctx, `SELECT k, v FROM order_meta WHERE k IN ('project_name', 'zone_name')`)
	if err != nil {
		return "", "", err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return "", "", err
		}
		names[k] = v
	}
	return names["project_name"], names["zone_name"], rows.Err()
}
