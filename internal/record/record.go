package record

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/vancomm/pyrat/internal/engine"
	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/state"
)

var ErrNoInitial = errors.New("record has no initial state")

type Turn struct {
	P1 maze.Move `json:"p1"`
	P2 maze.Move `json:"p2"`
}

// Record is a game's initial state and the moves played since. Replaying
// the moves reproduces every later position exactly.
type Record struct {
	Initial *state.GameState `json:"initial"`
	Turns   []Turn           `json:"turns"`
}

func New(initial *state.GameState) *Record {
	return &Record{Initial: initial.Clone(), Turns: []Turn{}}
}

func Decode(buf []byte) (*Record, error) {
	var r Record
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r Record) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Record) Clone() *Record {
	c := &Record{Turns: slices.Clone(r.Turns)}
	if r.Initial != nil {
		c.Initial = r.Initial.Clone()
	}
	return c
}

func (r *Record) Append(p1, p2 maze.Move) {
	r.Turns = append(r.Turns, Turn{p1, p2})
}

func (r *Record) Len() int {
	return len(r.Turns)
}

// Position replays the first n turns.
func (r *Record) Position(n int, kind engine.Kind) (*state.GameState, error) {
	if r.Initial == nil {
		return nil, ErrNoInitial
	}
	if n < 0 || n > len(r.Turns) {
		return nil, fmt.Errorf("turn %d out of range [0, %d]", n, len(r.Turns))
	}
	e, err := engine.NewKind(r.Initial, kind)
	if err != nil {
		return nil, err
	}
	for _, t := range r.Turns[:n] {
		e.ApplyMove(t.P1, t.P2)
	}
	return e.State(), nil
}

// Replay returns the state after every recorded turn.
func (r *Record) Replay(kind engine.Kind) (*state.GameState, error) {
	return r.Position(len(r.Turns), kind)
}

// Playout drives both players with uniformly random moves from the
// engine's current state until the cheese runs out or maxTurns turns were
// played.
func Playout(e *engine.Engine, r *rand.Rand, maxTurns int) *Record {
	rec := New(e.State())
	for range maxTurns {
		if e.Finished() {
			break
		}
		p1 := maze.Moves[r.IntN(len(maze.Moves))]
		p2 := maze.Moves[r.IntN(len(maze.Moves))]
		e.ApplyMove(p1, p2)
		rec.Append(p1, p2)
	}
	return rec
}
