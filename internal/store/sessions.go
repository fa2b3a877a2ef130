package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vancomm/pyrat/internal/record"
	"github.com/vancomm/pyrat/internal/session"
)

// Open opens (or creates) a SQLite database file.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open sqlite db %s: %w", path, err)
	}
	// sqlite serializes writers anyway
	db.SetMaxOpenConns(1)
	return db, nil
}

// SessionStore implements [session.Store] on a [Store].
type SessionStore struct {
	kv *Store
}

var _ session.Store = (*SessionStore)(nil)

func NewSessionStore(ctx context.Context, db *sql.DB) (*SessionStore, error) {
	kv, err := New(ctx, db, "game_session")
	if err != nil {
		return nil, err
	}
	return &SessionStore{kv: kv}, nil
}

func (s *SessionStore) Create(ctx context.Context, sess *session.Session) error {
	ok, err := s.kv.Insert(ctx, sess.ID, sess)
	if err != nil {
		return fmt.Errorf("unable to create session %s: %w", sess.ID, err)
	}
	if !ok {
		return session.ErrExists
	}
	return nil
}

func (s *SessionStore) Fetch(ctx context.Context, id string) (*session.Session, error) {
	var sess session.Session
	err := s.kv.Get(ctx, id, &sess)
	if errors.Is(err, ErrNotFound) {
		return nil, session.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("unable to fetch session %s: %w", id, err)
	}
	return &sess, nil
}

func (s *SessionStore) Update(ctx context.Context, sess *session.Session) error {
	err := s.kv.Get(ctx, sess.ID, nil)
	if errors.Is(err, ErrNotFound) {
		return session.ErrNotFound
	} else if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, sess.ID, sess); err != nil {
		return fmt.Errorf("unable to update session %s: %w", sess.ID, err)
	}
	return nil
}

// RecordStore archives finished games under caller-chosen keys.
type RecordStore struct {
	kv *Store
}

func NewRecordStore(ctx context.Context, db *sql.DB) (*RecordStore, error) {
	kv, err := New(ctx, db, "game_record")
	if err != nil {
		return nil, err
	}
	return &RecordStore{kv: kv}, nil
}

func (s *RecordStore) Save(ctx context.Context, key string, rec *record.Record) error {
	return s.kv.Set(ctx, key, rec)
}

func (s *RecordStore) Load(ctx context.Context, key string) (*record.Record, error) {
	var rec record.Record
	if err := s.kv.Get(ctx, key, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RecordStore) Keys(ctx context.Context) ([]string, error) {
	return s.kv.Keys(ctx)
}
