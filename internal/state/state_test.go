package state

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/pyrat/internal/maze"
)

func sample() *GameState {
	return &GameState{
		Width:  3,
		Height: 3,
		Walls:  maze.NewWalls(maze.NewEdge(maze.Coordinate{X: 0, Y: 0}, maze.Coordinate{X: 1, Y: 0})),
		Mud: maze.NewMud(maze.MudEdge{
			Edge: maze.NewEdge(maze.Coordinate{X: 1, Y: 1}, maze.Coordinate{X: 1, Y: 2}),
			Cost: 3,
		}),
		Cheese:  maze.NewCheese(maze.Coordinate{X: 1, Y: 1}, maze.Coordinate{X: 2, Y: 0}),
		Player1: Player{Position: maze.Coordinate{X: 0, Y: 0}},
		Player2: Player{Position: maze.Coordinate{X: 2, Y: 2}, Score: 1.5, Misses: 2},
	}
}

func TestClone(t *testing.T) {
	s := sample()
	c := s.Clone()
	require.True(t, s.Equal(c))

	c.Cheese.Take(maze.Coordinate{X: 1, Y: 1})
	c.Walls.Add(maze.Coordinate{X: 2, Y: 2}, maze.Coordinate{X: 2, Y: 1})
	c.Mud.Set(maze.Coordinate{X: 0, Y: 1}, maze.Coordinate{X: 0, Y: 2}, 4)
	c.Player1.Score = 3

	assert.Equal(t, 2, s.Cheese.Len())
	assert.Equal(t, 1, s.Walls.Len())
	assert.Equal(t, 1, s.Mud.Len())
	assert.Zero(t, s.Player1.Score)
	assert.False(t, s.Equal(c))
}

func TestBytes(t *testing.T) {
	s := sample()
	first, err := s.Bytes()
	require.NoError(t, err)
	second, err := s.Clone().Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second))

	decoded, err := Decode(first)
	require.NoError(t, err)
	assert.True(t, s.Equal(decoded))
}

func TestValidate(t *testing.T) {
	require.NoError(t, sample().Validate())

	tests := []struct {
		name   string
		mutate func(s *GameState)
	}{
		{"empty grid", func(s *GameState) { s.Width = 0 }},
		{"wall not adjacent", func(s *GameState) {
			s.Walls.Add(maze.Coordinate{X: 0, Y: 0}, maze.Coordinate{X: 2, Y: 2})
		}},
		{"mud on wall", func(s *GameState) {
			s.Mud.Set(maze.Coordinate{X: 1, Y: 0}, maze.Coordinate{X: 0, Y: 0}, 2)
		}},
		{"cheap mud", func(s *GameState) {
			s.Mud.Set(maze.Coordinate{X: 2, Y: 1}, maze.Coordinate{X: 2, Y: 2}, 1)
		}},
		{"cheese under player", func(s *GameState) { s.Cheese.Put(s.Player2.Position) }},
		{"player off grid", func(s *GameState) { s.Player1.Position = maze.Coordinate{X: 3, Y: 0} }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := sample()
			test.mutate(s)
			err := s.Validate()
			var iv InvariantViolation
			assert.True(t, errors.As(err, &iv), "got %v", err)
		})
	}
}
