// Package store is the terminal's local sqlite state: the sealed bearer token,
// cached order snapshots for the statistics charts, and generated-bill records.
package store

import (
	"encoding/hex"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/chacha20poly1305"
	_ "modernc.org/sqlite"
)

type Store struct {
	db   *sqlx.DB
	aead cipherAEAD
}

// Open opens (and migrates) the terminal database. keyHex must decode to a
// 32-byte key; it seals the bearer token at rest.
func Open(dsn, keyHex string) (*Store, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("store: token key must be %d hex-encoded bytes", chacha20poly1305.KeySize)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db, aead: aead}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS auth_token(
  k TEXT PRIMARY KEY CHECK (k = 'access_token'),
  sealed BLOB NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS order_cache(
  id TEXT PRIMARY KEY,
  customer_id TEXT,
  cart_id TEXT,
  status TEXT,
  created_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_order_cache_created_at ON order_cache(created_at);

CREATE TABLE IF NOT EXISTS bills(
  id TEXT PRIMARY KEY,
  customer_id TEXT,
  order_id TEXT,
  path TEXT NOT NULL,
  total INTEGER NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}
