package storage

import (
	"encoding/json"
	"fmt"

	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/drivers/sqlite"
	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
)

// SQLiteStore is the durable key/value table behind every repository.
// Values are opaque bytes; one row per logical key, replaced atomically.
type SQLiteStore struct {
	db  *squealx.DB
	bus contracts.Bus
	log *zap.Logger
}

func NewSQLiteStore(dbPath string, bus contracts.Bus, log *zap.Logger) (*SQLiteStore, error) {
	db, err := sqlite.Open(dbPath, "portfolio")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`)
	if err != nil {
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}

	return &SQLiteStore{db: db, bus: bus, log: log}, nil
}

func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	rows, err := s.db.Query(`SELECT value FROM kv WHERE key = ?`, key)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, false, nil
	}
	var value []byte
	if err := rows.Scan(&value); err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set replaces the value under key in one atomic statement and notifies the
// change bus so other open views re-read.
func (s *SQLiteStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`, key, value)
	if err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(key)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(key)
	}
	return nil
}

// GetJSON reports false when the key is absent or the stored bytes do not
// decode; the caller falls back to its default. Corruption never propagates.
func (s *SQLiteStore) GetJSON(key string, dest any) bool {
	raw, ok, err := s.Get(key)
	if err != nil {
		s.log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn("storage corrupt, using fallback", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *SQLiteStore) SetJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(key, raw)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
