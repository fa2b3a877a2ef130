package engine

import (
	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/state"
)

// Engine owns a game state and advances it one turn at a time. States
// passed in and handed out are always copies.
type Engine struct {
	resolver Resolver
	initial  *state.GameState
	current  *state.GameState
	turn     int
}

type Option func(e *Engine)

func WithResolver(r Resolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// New starts an engine at a copy of initial, resolving turns with the
// scalar resolver unless told otherwise. A malformed initial state is
// rejected with a [state.InvariantViolation].
func New(initial *state.GameState, opts ...Option) (*Engine, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{resolver: &scalarResolver{}}
	for _, opt := range opts {
		opt(e)
	}
	e.initial = initial.Clone()
	e.Reset()
	return e, nil
}

// NewKind is [New] with the resolver named by kind.
func NewKind(initial *state.GameState, kind Kind) (*Engine, error) {
	r, err := NewResolver(kind)
	if err != nil {
		return nil, err
	}
	return New(initial, WithResolver(r))
}

// Reset restores the initial state.
func (e *Engine) Reset() {
	e.current = e.initial.Clone()
	e.turn = 0
	e.resolver.Load(e.current)
}

// SetState replaces the current state with a copy of s. The initial state
// is kept for [Engine.Reset]. A malformed s is rejected and the current
// state left as it was.
func (e *Engine) SetState(s *state.GameState) error {
	if err := s.Validate(); err != nil {
		return err
	}
	e.current = s.Clone()
	e.resolver.Load(e.current)
	return nil
}

func (e *Engine) State() *state.GameState {
	return e.current.Clone()
}

func (e *Engine) Initial() *state.GameState {
	return e.initial.Clone()
}

// Turn counts moves applied since the last reset.
func (e *Engine) Turn() int {
	return e.turn
}

// ApplyMove resolves one simultaneous turn and returns the score each
// player gained.
func (e *Engine) ApplyMove(p1, p2 maze.Move) (float64, float64) {
	e.turn++
	return e.resolver.Resolve(e.current, p1, p2)
}

// Finished reports whether all cheese has been collected.
func (e *Engine) Finished() bool {
	return e.current.Finished()
}
