package maze

import (
	"fmt"
	"strings"
)

type Move int

const (
	Up Move = iota
	Left
	Down
	Right
	DidNotMove
)

// Directions lists the moves that change position.
var Directions = [...]Move{Up, Left, Down, Right}

// Moves lists every valid move.
var Moves = [...]Move{Up, Left, Down, Right, DidNotMove}

var moveNames = [...]string{
	Up:         "UP",
	Left:       "LEFT",
	Down:       "DOWN",
	Right:      "RIGHT",
	DidNotMove: "DID_NOT_MOVE",
}

func (m Move) Valid() bool {
	return m >= Up && m <= DidNotMove
}

func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Apply returns the cell a move from c aims at. Bounds and walls are not
// checked. Invalid moves behave as [DidNotMove].
func (m Move) Apply(c Coordinate) Coordinate {
	switch m {
	case Up:
		return Coordinate{c.X, c.Y + 1}
	case Down:
		return Coordinate{c.X, c.Y - 1}
	case Left:
		return Coordinate{c.X - 1, c.Y}
	case Right:
		return Coordinate{c.X + 1, c.Y}
	default:
		return c
	}
}

func ParseMove(s string) (Move, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP", "U":
		return Up, nil
	case "LEFT", "L":
		return Left, nil
	case "DOWN", "D":
		return Down, nil
	case "RIGHT", "R":
		return Right, nil
	case "DID_NOT_MOVE", "STAY", "NONE", "":
		return DidNotMove, nil
	}
	return DidNotMove, fmt.Errorf("unknown move %q", s)
}

func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid move %d", int(m))
	}
	return []byte(moveNames[m]), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// DirectionBetween returns the move leading from a to an adjacent cell b.
func DirectionBetween(a, b Coordinate) (Move, bool) {
	if !a.Adjacent(b) {
		return DidNotMove, false
	}
	for _, m := range Directions {
		if m.Apply(a) == b {
			return m, true
		}
	}
	return DidNotMove, false
}
