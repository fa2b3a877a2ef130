package record

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/pyrat/internal/engine"
	"github.com/vancomm/pyrat/internal/generator"
	"github.com/vancomm/pyrat/internal/maze"
)

func TestPlayoutReplay(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	mc := generator.DefaultMazeConfig()
	mc.MudDensity = 0.2

	for range 10 {
		s, err := generator.Generate(mc, generator.DefaultPlayerConfig(), r)
		require.NoError(t, err)

		e, err := engine.New(s)
		require.NoError(t, err)
		rec := Playout(e, r, 400)
		assert.LessOrEqual(t, rec.Len(), 400)
		assert.Equal(t, rec.Len(), e.Turn())
		if rec.Len() < 400 {
			assert.True(t, e.Finished())
		}

		want, err := e.State().Bytes()
		require.NoError(t, err)
		for _, kind := range []engine.Kind{engine.Scalar, engine.Dense} {
			final, err := rec.Replay(kind)
			require.NoError(t, err)
			got, err := final.Bytes()
			require.NoError(t, err)
			assert.True(t, bytes.Equal(want, got), kind)
		}

		start, err := rec.Position(0, engine.Scalar)
		require.NoError(t, err)
		assert.True(t, start.Equal(s))
	}
}

func TestPosition(t *testing.T) {
	s, err := generator.Generate(generator.MazeConfig{
		Width:       5,
		Height:      5,
		IsConnected: true,
		CheeseMode:  generator.ListCheese,
		Cheeses:     []maze.Coordinate{{X: 2, Y: 0}},
	}, generator.DefaultPlayerConfig(), rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	rec := New(s)
	rec.Append(maze.Right, maze.Left)
	rec.Append(maze.Right, maze.Left)

	mid, err := rec.Position(1, engine.Dense)
	require.NoError(t, err)
	assert.Equal(t, maze.Coordinate{X: 1, Y: 0}, mid.Player1.Position)
	assert.Equal(t, 1, mid.Cheese.Len())

	end, err := rec.Replay(engine.Scalar)
	require.NoError(t, err)
	assert.Equal(t, 1.0, end.Player1.Score)
	assert.True(t, end.Finished())

	_, err = rec.Position(3, engine.Scalar)
	assert.Error(t, err)
	_, err = rec.Position(1, engine.Kind("gpu"))
	assert.Error(t, err)
}

func TestEncoding(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	s, err := generator.Generate(generator.DefaultMazeConfig(), generator.DefaultPlayerConfig(), r)
	require.NoError(t, err)
	e, err := engine.New(s)
	require.NoError(t, err)
	rec := Playout(e, r, 50)

	b, err := rec.Bytes()
	require.NoError(t, err)
	decoded, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, rec.Turns, decoded.Turns)
	assert.True(t, rec.Initial.Equal(decoded.Initial))

	js, err := json.Marshal(rec)
	require.NoError(t, err)
	var fromJSON Record
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	assert.Equal(t, rec.Turns, fromJSON.Turns)
	assert.True(t, rec.Initial.Equal(fromJSON.Initial))
}

func TestMissingInitial(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"turns": [{"p1": "UP", "p2": "DOWN"}]}`), &rec))

	_, err := rec.Replay(engine.Scalar)
	assert.ErrorIs(t, err, ErrNoInitial)
	_, err = rec.Position(0, engine.Dense)
	assert.ErrorIs(t, err, ErrNoInitial)

	c := rec.Clone()
	assert.Nil(t, c.Initial)
	assert.Equal(t, rec.Turns, c.Turns)
}
