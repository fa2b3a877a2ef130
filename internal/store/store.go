package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/gob"
	"errors"
	"fmt"
	"sync"
)

// Store is a gob-encoded key/value table in a SQL database.
type Store struct {
	mu    sync.Mutex
	table string
	db    *sql.DB
}

var (
	ErrBadName  = errors.New("bad name for store")
	ErrNotFound = errors.New("value not found")
)

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// New creates the table if needed. table must be a plain SQL identifier.
func New(ctx context.Context, db *sql.DB, table string) (*Store, error) {
	if !isIdentifier(table) {
		return nil, ErrBadName
	}
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS `+table+` (
	key		TEXT PRIMARY KEY,
	value	BLOB NOT NULL
);`)
	if err != nil {
		return nil, fmt.Errorf("unable to create table %s: %w", table, err)
	}
	return &Store{table: table, db: db}, nil
}

// Get decodes the value under key into value, which must be a pointer or
// nil. Returns [ErrNotFound] for missing keys.
func (s *Store) Get(ctx context.Context, key string, value any) error {
	var v []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM `+s.table+` WHERE key = ?;`, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	return gob.NewDecoder(bytes.NewReader(v)).Decode(value)
}

// Set inserts or replaces the value under key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO `+s.table+` (key, value)
VALUES (?, ?)
ON CONFLICT(key)
DO UPDATE SET value = excluded.value;`,
		key, buf.Bytes())
	return err
}

// Insert stores value under key unless the key is taken, in which case it
// reports false.
func (s *Store) Insert(ctx context.Context, key string, value any) (bool, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO `+s.table+` (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING;`,
		key, buf.Bytes())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

// Delete removes key without checking it existed.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE key = ?;`, key)
	return err
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+s.table+`;`).Scan(&n)
	return n, err
}

// Keys lists every key in ascending order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM `+s.table+` ORDER BY key;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
