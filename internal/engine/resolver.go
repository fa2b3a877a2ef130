package engine

import (
	"fmt"

	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/state"
)

// Resolver applies one simultaneous turn to a state in place and returns
// the score gained by each player.
type Resolver interface {
	// Load is called whenever the walls or mud of the resolved state may
	// have changed.
	Load(s *state.GameState)
	Resolve(s *state.GameState, p1, p2 maze.Move) (float64, float64)
}

type Kind string

const (
	Scalar Kind = "scalar"
	Dense  Kind = "dense"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", Scalar:
		return Scalar, nil
	case Dense:
		return Dense, nil
	}
	return "", fmt.Errorf("unknown engine kind %q", s)
}

func NewResolver(kind Kind) (Resolver, error) {
	switch kind {
	case "", Scalar:
		return &scalarResolver{}, nil
	case Dense:
		return &denseResolver{}, nil
	}
	return nil, fmt.Errorf("unknown engine kind %q", kind)
}

// collect awards cheese under the final positions. A shared cell is split.
func collect(s *state.GameState) (float64, float64) {
	p1, p2 := &s.Player1, &s.Player2
	if p1.Position == p2.Position {
		if s.Cheese.Take(p1.Position) {
			p1.Score += 0.5
			p2.Score += 0.5
			return 0.5, 0.5
		}
		return 0, 0
	}
	var d1, d2 float64
	if s.Cheese.Take(p1.Position) {
		p1.Score++
		d1 = 1
	}
	if s.Cheese.Take(p2.Position) {
		p2.Score++
		d2 = 1
	}
	return d1, d2
}
