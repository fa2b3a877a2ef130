package engine

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/pyrat/internal/generator"
	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/state"
)

func xy(x, y int) maze.Coordinate {
	return maze.Coordinate{X: x, Y: y}
}

var kinds = []Kind{Scalar, Dense}

func newEngine(t *testing.T, s *state.GameState, kind Kind) *Engine {
	t.Helper()
	e, err := NewKind(s, kind)
	require.NoError(t, err)
	return e
}

func newScalar(t *testing.T, s *state.GameState) *Engine {
	t.Helper()
	e, err := New(s)
	require.NoError(t, err)
	return e
}

func TestBlockedByWalls(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			s := &state.GameState{
				Width:  2,
				Height: 2,
				Walls: maze.NewWalls(
					maze.NewEdge(xy(0, 0), xy(1, 0)),
					maze.NewEdge(xy(0, 1), xy(1, 1)),
				),
				Cheese:  maze.NewCheese(xy(1, 0), xy(0, 1)),
				Player1: state.Player{Position: xy(0, 0)},
				Player2: state.Player{Position: xy(1, 1)},
			}
			e := newEngine(t, s, kind)

			d1, d2 := e.ApplyMove(maze.Right, maze.Left)
			assert.Zero(t, d1)
			assert.Zero(t, d2)

			got := e.State()
			assert.Equal(t, state.Player{Position: xy(0, 0), Misses: 1}, got.Player1)
			assert.Equal(t, state.Player{Position: xy(1, 1), Misses: 1}, got.Player2)
			assert.Equal(t, 2, got.Cheese.Len())
		})
	}
}

func TestMeetOnLastCheese(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			s := &state.GameState{
				Width:   5,
				Height:  5,
				Cheese:  maze.NewCheese(xy(2, 2), xy(1, 3), xy(3, 1), xy(2, 0), xy(2, 4)),
				Player1: state.Player{Position: xy(0, 0)},
				Player2: state.Player{Position: xy(4, 4)},
			}
			e := newEngine(t, s, kind)

			turns := []struct {
				p1, p2 maze.Move
				d1, d2 float64
			}{
				{maze.Right, maze.Left, 0, 0},
				{maze.Right, maze.Left, 1, 1},
				{maze.Up, maze.Down, 0, 0},
				{maze.Right, maze.Left, 1, 1},
				{maze.Up, maze.Down, 0, 0},
				{maze.Left, maze.Right, 0.5, 0.5},
			}
			for i, turn := range turns {
				d1, d2 := e.ApplyMove(turn.p1, turn.p2)
				assert.Equal(t, turn.d1, d1, "turn %d", i)
				assert.Equal(t, turn.d2, d2, "turn %d", i)
			}

			got := e.State()
			assert.Equal(t, xy(2, 2), got.Player1.Position)
			assert.Equal(t, xy(2, 2), got.Player2.Position)
			assert.Equal(t, 2.5, got.Player1.Score)
			assert.Equal(t, 2.5, got.Player2.Score)
			assert.Zero(t, got.Player1.Misses)
			assert.Zero(t, got.Player2.Misses)
			assert.True(t, got.Finished())
			assert.Equal(t, len(turns), e.Turn())
		})
	}
}

func TestMud(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			s := &state.GameState{
				Width:  3,
				Height: 1,
				Mud: maze.NewMud(
					maze.MudEdge{Edge: maze.NewEdge(xy(0, 0), xy(1, 0)), Cost: 3},
					maze.MudEdge{Edge: maze.NewEdge(xy(1, 0), xy(2, 0)), Cost: 4},
				),
				Cheese:  maze.NewCheese(xy(1, 0)),
				Player1: state.Player{Position: xy(0, 0)},
				Player2: state.Player{Position: xy(2, 0)},
			}
			e := newEngine(t, s, kind)

			// entering mud commits the move and sets the timer
			d1, _ := e.ApplyMove(maze.Right, maze.DidNotMove)
			assert.Equal(t, 1.0, d1)
			got := e.State()
			assert.Equal(t, state.Player{Position: xy(1, 0), Score: 1, Mud: 3}, got.Player1)

			for turn := range 2 {
				e.ApplyMove(maze.Right, maze.DidNotMove)
				got = e.State()
				assert.Equal(t, xy(1, 0), got.Player1.Position, "stuck turn %d", turn)
				assert.Equal(t, turn+1, got.Player1.Misses)
				assert.Equal(t, 2-turn, got.Player1.Mud)
			}

			e.ApplyMove(maze.Right, maze.DidNotMove)
			got = e.State()
			assert.Equal(t, xy(2, 0), got.Player1.Position)
			assert.Equal(t, 4, got.Player1.Mud)
			assert.Equal(t, 2, got.Player1.Misses)
			assert.Equal(t, 4, got.Player2.Misses)
		})
	}
}

func TestStuckIgnoresMove(t *testing.T) {
	tests := []struct {
		name  string
		mud   int
		stuck int
	}{
		{"timer 2", 2, 1},
		{"timer 3", 3, 2},
	}

	for _, tt := range tests {
		for _, kind := range kinds {
			t.Run(tt.name+"/"+string(kind), func(t *testing.T) {
				s := &state.GameState{
					Width:   3,
					Height:  3,
					Mud:     maze.NewMud(maze.MudEdge{Edge: maze.NewEdge(xy(1, 1), xy(1, 2)), Cost: 2}),
					Player1: state.Player{Position: xy(1, 1), Mud: tt.mud},
					Player2: state.Player{Position: xy(0, 0)},
				}
				e := newEngine(t, s, kind)

				for turn := range tt.stuck {
					e.ApplyMove(maze.Left, maze.DidNotMove)
					got := e.State()
					assert.Equal(t, xy(1, 1), got.Player1.Position, "stuck turn %d", turn)
					assert.Equal(t, tt.mud-turn-1, got.Player1.Mud)
				}
				e.ApplyMove(maze.Up, maze.DidNotMove)
				got := e.State()
				assert.Equal(t, state.Player{Position: xy(1, 2), Mud: 2, Misses: tt.stuck}, got.Player1)
			})
		}
	}
}

func TestRejectsMalformedState(t *testing.T) {
	valid := func() *state.GameState {
		return &state.GameState{
			Width:   3,
			Height:  3,
			Cheese:  maze.NewCheese(xy(1, 1)),
			Player1: state.Player{Position: xy(0, 0)},
			Player2: state.Player{Position: xy(2, 2)},
		}
	}

	tests := []struct {
		name   string
		modify func(s *state.GameState)
	}{
		{"player off the grid", func(s *state.GameState) {
			s.Player1.Position = xy(5, 7)
		}},
		{"mud on a wall", func(s *state.GameState) {
			e := maze.NewEdge(xy(0, 0), xy(1, 0))
			s.Walls = maze.NewWalls(e)
			s.Mud = maze.NewMud(maze.MudEdge{Edge: e, Cost: 3})
		}},
		{"cheese under a player", func(s *state.GameState) {
			s.Cheese.Put(xy(2, 2))
		}},
		{"empty grid", func(s *state.GameState) {
			s.Width = 0
		}},
	}

	for _, tt := range tests {
		for _, kind := range kinds {
			t.Run(tt.name+"/"+string(kind), func(t *testing.T) {
				bad := valid()
				tt.modify(bad)

				_, err := NewKind(bad, kind)
				var iv state.InvariantViolation
				assert.ErrorAs(t, err, &iv)

				e := newEngine(t, valid(), kind)
				assert.ErrorAs(t, e.SetState(bad), &iv)
				assert.True(t, e.State().Equal(valid()), "rejected state must not be applied")

				d1, d2 := e.ApplyMove(maze.Right, maze.DidNotMove)
				assert.Zero(t, d1)
				assert.Zero(t, d2)
				assert.Equal(t, xy(1, 0), e.State().Player1.Position)
			})
		}
	}
}

func TestBorders(t *testing.T) {
	s := &state.GameState{
		Width:   2,
		Height:  2,
		Player1: state.Player{Position: xy(0, 0)},
		Player2: state.Player{Position: xy(1, 1)},
	}
	e := newScalar(t, s)
	e.ApplyMove(maze.Down, maze.Up)
	e.ApplyMove(maze.Left, maze.Right)
	e.ApplyMove(maze.Move(-1), maze.DidNotMove)
	got := e.State()
	assert.Equal(t, xy(0, 0), got.Player1.Position)
	assert.Equal(t, xy(1, 1), got.Player2.Position)
	assert.Equal(t, 3, got.Player1.Misses)
	assert.Equal(t, 3, got.Player2.Misses)
}

func TestResetAndIsolation(t *testing.T) {
	s := &state.GameState{
		Width:   3,
		Height:  3,
		Cheese:  maze.NewCheese(xy(1, 0)),
		Player1: state.Player{Position: xy(0, 0)},
		Player2: state.Player{Position: xy(2, 2)},
	}
	e := newScalar(t, s)
	initial, err := e.State().Bytes()
	require.NoError(t, err)

	e.ApplyMove(maze.Right, maze.Down)
	assert.Equal(t, 1, s.Cheese.Len(), "caller state must not change")

	snapshot := e.State()
	snapshot.Cheese.Put(xy(2, 0))
	assert.Zero(t, e.State().Cheese.Len(), "returned state must be a copy")

	e.Reset()
	reset, err := e.State().Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(initial, reset))
	assert.Zero(t, e.Turn())

	require.NoError(t, e.SetState(snapshot))
	assert.Equal(t, 1, e.State().Cheese.Len())
	e.Reset()
	assert.Equal(t, 1, e.State().Cheese.Len())
	assert.True(t, e.State().Cheese.Has(xy(1, 0)))
}

func playout(e *Engine, r *rand.Rand, turns int) [][2]float64 {
	deltas := make([][2]float64, 0, turns)
	for range turns {
		m1 := maze.Moves[r.IntN(len(maze.Moves))]
		m2 := maze.Moves[r.IntN(len(maze.Moves))]
		d1, d2 := e.ApplyMove(m1, m2)
		deltas = append(deltas, [2]float64{d1, d2})
	}
	return deltas
}

func TestResolversAgree(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	mc := generator.DefaultMazeConfig()
	mc.MudDensity = 0.3
	for game := range 20 {
		s, err := generator.Generate(mc, generator.DefaultPlayerConfig(), r)
		require.NoError(t, err)

		scalar := newEngine(t, s, Scalar)
		dense := newEngine(t, s, Dense)
		seed := r.Uint64()
		a := playout(scalar, rand.New(rand.NewPCG(seed, 0)), 300)
		b := playout(dense, rand.New(rand.NewPCG(seed, 0)), 300)
		require.Equal(t, a, b, "game %d", game)

		sa, err := scalar.State().Bytes()
		require.NoError(t, err)
		sb, err := dense.State().Bytes()
		require.NoError(t, err)
		assert.True(t, bytes.Equal(sa, sb), "game %d", game)
	}
}

func TestMissesNeverDecrease(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	s, err := generator.Generate(generator.DefaultMazeConfig(), generator.DefaultPlayerConfig(), r)
	require.NoError(t, err)
	e := newScalar(t, s)

	total := float64(s.Cheese.Len())
	prev := e.State()
	for range 500 {
		before := prev.Cheese.Len()
		m1 := maze.Moves[r.IntN(len(maze.Moves))]
		m2 := maze.Moves[r.IntN(len(maze.Moves))]
		d1, d2 := e.ApplyMove(m1, m2)
		cur := e.State()

		assert.GreaterOrEqual(t, cur.Player1.Misses, prev.Player1.Misses)
		assert.GreaterOrEqual(t, cur.Player2.Misses, prev.Player2.Misses)
		assert.GreaterOrEqual(t, cur.Player1.Mud, 0)
		assert.GreaterOrEqual(t, cur.Player2.Mud, 0)
		assert.Equal(t, float64(before-cur.Cheese.Len()), d1+d2)
		assert.False(t, cur.Cheese.Has(cur.Player1.Position))
		assert.False(t, cur.Cheese.Has(cur.Player2.Position))
		prev = cur
	}
	assert.Equal(t, total, prev.Player1.Score+prev.Player2.Score+float64(prev.Cheese.Len()))
}

func BenchmarkApplyMove(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	s, err := generator.Generate(generator.DefaultMazeConfig(), generator.DefaultPlayerConfig(), r)
	if err != nil {
		b.Fatal(err)
	}
	for _, kind := range kinds {
		b.Run(string(kind), func(b *testing.B) {
			e, err := NewKind(s, kind)
			if err != nil {
				b.Fatal(err)
			}
			for i := range b.N {
				if i%1000 == 0 {
					e.Reset()
				}
				e.ApplyMove(maze.Moves[r.IntN(5)], maze.Moves[r.IntN(5)])
			}
		})
	}
}
