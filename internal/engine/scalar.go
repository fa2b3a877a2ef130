package engine

import (
	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/state"
)

// scalarResolver reads walls and mud straight from the state.
type scalarResolver struct{}

func (*scalarResolver) Load(*state.GameState) {}

func (*scalarResolver) Resolve(s *state.GameState, m1, m2 maze.Move) (float64, float64) {
	players := s.Players()
	moves := [2]maze.Move{m1, m2}

	var dest [2]maze.Coordinate
	for i, p := range players {
		p.Mud--
		dest[i] = p.Position
		target := moves[i].Apply(p.Position)
		if target != p.Position && p.Mud <= 0 &&
			target.InBounds(s.Width, s.Height) && !s.Walls.Has(p.Position, target) {
			dest[i] = target
		}
	}

	for i, p := range players {
		if dest[i] == p.Position {
			p.Misses++
		}
		if p.Mud <= 0 {
			p.Mud = s.Mud.Cost(p.Position, dest[i])
		}
		p.Position = dest[i]
	}

	return collect(s)
}
