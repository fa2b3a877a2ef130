package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/pyrat/internal/engine"
	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/record"
	"github.com/vancomm/pyrat/internal/state"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExists   = errors.New("session already exists")
)

// Session is a game hosted by the server. The record is the source of
// truth, State caches its replay.
type Session struct {
	ID        string
	Seed      uint64
	Kind      engine.Kind
	Record    *record.Record
	State     *state.GameState
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(initial *state.GameState, seed uint64, kind engine.Kind) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Seed:      seed,
		Kind:      kind,
		Record:    record.New(initial),
		State:     initial.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Engine returns an engine positioned at the session's current state.
func (s *Session) Engine() (*engine.Engine, error) {
	e, err := engine.NewKind(s.Record.Initial, s.Kind)
	if err != nil {
		return nil, err
	}
	if err := e.SetState(s.State); err != nil {
		return nil, err
	}
	return e, nil
}

// Move plays one turn and records it.
func (s *Session) Move(p1, p2 maze.Move) (float64, float64, error) {
	e, err := s.Engine()
	if err != nil {
		return 0, 0, err
	}
	d1, d2 := e.ApplyMove(p1, p2)
	s.Record.Append(p1, p2)
	s.State = e.State()
	s.UpdatedAt = time.Now().UTC()
	return d1, d2, nil
}

// Reset rewinds the session to its initial state and forgets played turns.
func (s *Session) Reset() {
	s.Record = record.New(s.Record.Initial)
	s.State = s.Record.Initial.Clone()
	s.UpdatedAt = time.Now().UTC()
}

type Store interface {
	Create(ctx context.Context, s *Session) error
	Fetch(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, s *Session) error
}
