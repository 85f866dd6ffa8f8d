package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/floatdesk/internal/domain/repository"
	"github.com/bnema/floatdesk/internal/logging"
)

const (
	upsertValueSQL = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	getValueSQL    = `SELECT value FROM kv_store WHERE key = ?`
	deleteValueSQL = `DELETE FROM kv_store WHERE key = ?`
	listValuesSQL  = `SELECT key, value, updated_at FROM kv_store WHERE key >= ? ORDER BY key`
)

type layoutStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutStore creates a key-value layout store over an open database.
func NewLayoutStore(db *sql.DB) repository.LayoutStore {
	return &layoutStore{db: db, now: time.Now}
}

// Put creates or replaces the value under key in a single transaction.
func (s *layoutStore) Put(ctx context.Context, key string, value []byte) error {
	log := logging.FromContext(ctx)
	if key == "" {
		return errors.New("store key cannot be empty")
	}

	log.Debug().Str("key", key).Int("bytes", len(value)).Msg("storing value")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("put rollback reported non-terminal error")
		}
	}()

	if _, err := tx.ExecContext(ctx, upsertValueSQL, key, value, s.now().UnixMilli()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put transaction: %w", err)
	}
	return nil
}

// Get returns nil, nil when the key is absent.
func (s *layoutStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, getValueSQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *layoutStore) Delete(ctx context.Context, key string) error {
	logging.FromContext(ctx).Debug().Str("key", key).Msg("deleting value")
	if _, err := s.db.ExecContext(ctx, deleteValueSQL, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *layoutStore) List(ctx context.Context, prefix string) ([]repository.StoredValue, error) {
	rows, err := s.db.QueryContext(ctx, listValuesSQL, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}
	defer rows.Close()

	var out []repository.StoredValue
	for rows.Next() {
		var (
			v       repository.StoredValue
			updated int64
		)
		if err := rows.Scan(&v.Key, &v.Value, &updated); err != nil {
			return nil, fmt.Errorf("scan %s: %w", prefix, err)
		}
		// keys sort lexically, so the first key past the prefix ends the range
		if !strings.HasPrefix(v.Key, prefix) {
			break
		}
		v.UpdatedAt = time.UnixMilli(updated)
		out = append(out, v)
	}
	return out, rows.Err()
}
