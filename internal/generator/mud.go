package generator

import (
	"math/rand/v2"

	"github.com/vancomm/pyrat/internal/maze"
)

// randomMud covers open edges with mud until density of them are muddy.
// Costs are uniform in [2, maxCost]. Walled edges are never candidates.
func randomMud(width, height int, walls maze.Walls, density float64, maxCost int, symmetric bool, r *rand.Rand) maze.Mud {
	open := make([]maze.Edge, 0)
	for _, e := range maze.GridEdges(width, height) {
		if !walls.HasEdge(e) {
			open = append(open, e)
		}
	}
	r.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	mud := maze.NewMud()
	total := float64(len(open))
	for _, e := range open {
		if float64(mud.Len()) >= density*total {
			break
		}
		if mud.HasEdge(e) {
			continue
		}
		s := e.Symmetric(width, height)
		if symmetric && walls.HasEdge(s) {
			continue
		}
		cost := 2 + r.IntN(maxCost-1)
		mud.Set(e.A, e.B, cost)
		if symmetric {
			mud.Set(s.A, s.B, cost)
		}
	}

	Log.WithField("mud", mud.Len()).Debug("generated mud")
	return mud
}

func customMud(entries []maze.MudEdge, walls maze.Walls) (maze.Mud, error) {
	for _, m := range entries {
		if walls.HasEdge(m.Edge) {
			return maze.Mud{}, configError("mud %v lies on a wall", m.Edge)
		}
	}
	return maze.NewMud(entries...), nil
}
