package state

import (
	"bytes"
	"encoding/gob"

	"github.com/vancomm/pyrat/internal/maze"
)

type Player struct {
	Position maze.Coordinate `json:"position"`
	Score    float64         `json:"score"`
	// Mud is the number of turns the player is still stuck for.
	Mud    int `json:"mud"`
	Misses int `json:"misses"`
}

type GameState struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Walls   maze.Walls  `json:"walls"`
	Mud     maze.Mud    `json:"mud"`
	Cheese  maze.Cheese `json:"cheese"`
	Player1 Player      `json:"player1"`
	Player2 Player      `json:"player2"`
}

func Decode(buf []byte) (*GameState, error) {
	var s GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Bytes gob-encodes the state. Equal states encode to equal bytes.
func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Clone returns a deep copy of s.
func (s *GameState) Clone() *GameState {
	return &GameState{
		Width:   s.Width,
		Height:  s.Height,
		Walls:   s.Walls.Clone(),
		Mud:     s.Mud.Clone(),
		Cheese:  s.Cheese.Clone(),
		Player1: s.Player1,
		Player2: s.Player2,
	}
}

func (s *GameState) Equal(o *GameState) bool {
	return s.Width == o.Width && s.Height == o.Height &&
		s.Player1 == o.Player1 && s.Player2 == o.Player2 &&
		s.Walls.Equal(o.Walls) && s.Mud.Equal(o.Mud) && s.Cheese.Equal(o.Cheese)
}

// Players returns pointers to both players, Player 1 first.
func (s *GameState) Players() [2]*Player {
	return [2]*Player{&s.Player1, &s.Player2}
}

// Finished reports whether no cheese is left to collect.
func (s *GameState) Finished() bool {
	return s.Cheese.Len() == 0
}
