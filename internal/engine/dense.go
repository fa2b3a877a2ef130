package engine

import (
	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/state"
)

// denseResolver precomputes, for every cell and move, the destination and
// mud cost so a turn is a handful of array reads.
type denseResolver struct {
	width, height int
	next          [][len(maze.Moves)]int32
	cost          [][len(maze.Moves)]int32
}

func (d *denseResolver) Load(s *state.GameState) {
	d.width, d.height = s.Width, s.Height
	n := s.Width * s.Height
	d.next = make([][len(maze.Moves)]int32, n)
	d.cost = make([][len(maze.Moves)]int32, n)
	for _, c := range maze.Cells(s.Width, s.Height) {
		i := c.Index(s.Height)
		for _, m := range maze.Moves {
			d.next[i][m] = int32(i)
			target := m.Apply(c)
			if target == c || !target.InBounds(s.Width, s.Height) || s.Walls.Has(c, target) {
				continue
			}
			d.next[i][m] = int32(target.Index(s.Height))
			d.cost[i][m] = int32(s.Mud.Cost(c, target))
		}
	}
}

func (d *denseResolver) cell(i int32) maze.Coordinate {
	return maze.Coordinate{X: int(i) / d.height, Y: int(i) % d.height}
}

func (d *denseResolver) Resolve(s *state.GameState, m1, m2 maze.Move) (float64, float64) {
	if d.next == nil || d.width != s.Width || d.height != s.Height {
		d.Load(s)
	}
	players := s.Players()
	moves := [2]maze.Move{m1, m2}

	var from, to [2]int32
	var cost [2]int32
	for i, p := range players {
		p.Mud--
		from[i] = int32(p.Position.Index(d.height))
		to[i] = from[i]
		m := moves[i]
		if !m.Valid() {
			m = maze.DidNotMove
		}
		if p.Mud <= 0 {
			to[i], cost[i] = d.next[from[i]][m], d.cost[from[i]][m]
		}
	}

	for i, p := range players {
		if to[i] == from[i] {
			p.Misses++
		}
		if p.Mud <= 0 {
			p.Mud = int(cost[i])
		}
		p.Position = d.cell(to[i])
	}

	return collect(s)
}
