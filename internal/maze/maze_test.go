package maze

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveApply(t *testing.T) {
	c := Coordinate{2, 2}
	tests := []struct {
		move Move
		want Coordinate
	}{
		{Up, Coordinate{2, 3}},
		{Down, Coordinate{2, 1}},
		{Left, Coordinate{1, 2}},
		{Right, Coordinate{3, 2}},
		{DidNotMove, c},
		{Move(42), c},
	}
	for _, test := range tests {
		t.Run(test.move.String(), func(t *testing.T) {
			assert.Equal(t, test.want, test.move.Apply(c))
		})
	}
}

func TestParseMove(t *testing.T) {
	for _, m := range Moves {
		parsed, err := ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ParseMove("sideways")
	assert.Error(t, err)
}

func TestDirectionBetween(t *testing.T) {
	a := Coordinate{1, 1}
	for _, m := range Directions {
		got, ok := DirectionBetween(a, m.Apply(a))
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := DirectionBetween(a, Coordinate{2, 2})
	assert.False(t, ok)
	_, ok = DirectionBetween(a, a)
	assert.False(t, ok)
}

func TestSymmetric(t *testing.T) {
	assert.Equal(t, Coordinate{4, 4}, Coordinate{0, 0}.Symmetric(5, 5))
	assert.Equal(t, Coordinate{3, 0}, Coordinate{0, 1}.Symmetric(4, 2))

	for _, c := range Cells(4, 3) {
		assert.Equal(t, c, c.Symmetric(4, 3).Symmetric(4, 3))
	}

	center, ok := Center(5, 3)
	require.True(t, ok)
	assert.Equal(t, center, center.Symmetric(5, 3))
	_, ok = Center(4, 3)
	assert.False(t, ok)
}

func TestNeighbors(t *testing.T) {
	assert.ElementsMatch(t, []Coordinate{{0, 1}, {1, 0}}, Coordinate{0, 0}.Neighbors(3, 3))
	assert.Len(t, Coordinate{1, 1}.Neighbors(3, 3), 4)
	assert.Empty(t, Coordinate{0, 0}.Neighbors(1, 1))
}

func TestGridEdges(t *testing.T) {
	edges := GridEdges(3, 2)
	// (w-1)*h horizontal + w*(h-1) vertical
	assert.Len(t, edges, 2*2+3*1)
	for _, e := range edges {
		assert.True(t, e.Valid(3, 2), e.String())
		assert.Equal(t, e, NewEdge(e.B, e.A))
	}
}

func TestWalls(t *testing.T) {
	var w Walls
	assert.False(t, w.Has(Coordinate{0, 0}, Coordinate{0, 1}))

	assert.True(t, w.Add(Coordinate{0, 1}, Coordinate{0, 0}))
	assert.False(t, w.Add(Coordinate{0, 0}, Coordinate{0, 1}))
	assert.True(t, w.Has(Coordinate{0, 0}, Coordinate{0, 1}))
	assert.True(t, w.Has(Coordinate{0, 1}, Coordinate{0, 0}))
	assert.Equal(t, 1, w.Len())

	clone := w.Clone()
	clone.Add(Coordinate{1, 0}, Coordinate{1, 1})
	assert.Equal(t, 1, w.Len())
	assert.False(t, w.Equal(clone))

	clone.Remove(Coordinate{1, 1}, Coordinate{1, 0})
	assert.True(t, w.Equal(clone))
}

func TestMud(t *testing.T) {
	m := NewMud(MudEdge{NewEdge(Coordinate{0, 0}, Coordinate{1, 0}), 3})
	assert.Equal(t, 3, m.Cost(Coordinate{1, 0}, Coordinate{0, 0}))
	assert.Equal(t, 0, m.Cost(Coordinate{0, 0}, Coordinate{0, 1}))

	clone := m.Clone()
	clone.Set(Coordinate{0, 0}, Coordinate{1, 0}, 5)
	assert.Equal(t, 3, m.Cost(Coordinate{0, 0}, Coordinate{1, 0}))
	assert.False(t, m.Equal(clone))
}

func TestCheese(t *testing.T) {
	c := NewCheese(Coordinate{2, 1}, Coordinate{0, 3}, Coordinate{2, 0})
	assert.Equal(t, []Coordinate{{0, 3}, {2, 0}, {2, 1}}, c.Sorted())

	clone := c.Clone()
	assert.True(t, clone.Take(Coordinate{0, 3}))
	assert.False(t, clone.Take(Coordinate{0, 3}))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestContainersJSON(t *testing.T) {
	type bundle struct {
		Walls  Walls  `json:"walls"`
		Mud    Mud    `json:"mud"`
		Cheese Cheese `json:"cheese"`
	}
	in := bundle{
		Walls:  NewWalls(NewEdge(Coordinate{1, 1}, Coordinate{1, 0}), NewEdge(Coordinate{0, 0}, Coordinate{0, 1})),
		Mud:    NewMud(MudEdge{NewEdge(Coordinate{0, 1}, Coordinate{1, 1}), 4}),
		Cheese: NewCheese(Coordinate{1, 1}),
	}
	first, err := json.Marshal(in)
	require.NoError(t, err)
	second, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	var out bundle
	require.NoError(t, json.Unmarshal(first, &out))
	assert.True(t, in.Walls.Equal(out.Walls))
	assert.True(t, in.Mud.Equal(out.Mud))
	assert.True(t, in.Cheese.Equal(out.Cheese))
}
