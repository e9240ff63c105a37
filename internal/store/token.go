package store

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
)

// cipherAEAD is the subset of cipher.AEAD the token slot needs.
type cipherAEAD interface {
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
	NonceSize() int
}

// SaveToken seals the bearer token and writes it into the single token row.
func (s *Store) SaveToken(token string) error {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(token), nil)
	_, err := s.db.Exec(`
		INSERT INTO auth_token(k, sealed, updated_at) VALUES('access_token', ?, CURRENT_TIMESTAMP)
		ON CONFLICT(k) DO UPDATE SET sealed = excluded.sealed, updated_at = CURRENT_TIMESTAMP
	`, sealed)
	return err
}

// Token returns the stored bearer token, or "" when none is stored or the
// sealed blob cannot be opened. It satisfies catalog.TokenSource; requests
// simply go out unauthenticated when the slot is empty.
func (s *Store) Token() string {
	var sealed []byte
	if err := s.db.Get(&sealed, `SELECT sealed FROM auth_token WHERE k = 'access_token'`); err != nil {
		return ""
	}
	if len(sealed) < s.aead.NonceSize() {
		return ""
	}
	nonce, ct := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return ""
	}
	return string(plain)
}

// ClearToken removes the stored token (logout).
func (s *Store) ClearToken() error {
	_, err := s.db.Exec(`DELETE FROM auth_token WHERE k = 'access_token'`)
	return err
}

// HasToken reports whether a token row exists without unsealing it.
func (s *Store) HasToken() (bool, error) {
	var n int
	err := s.db.Get(&n, `SELECT COUNT(*) FROM auth_token WHERE k = 'access_token'`)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("token lookup: %w", err)
	}
	return n > 0, nil
}
