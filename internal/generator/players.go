package generator

import (
	"math/rand/v2"

	"github.com/vancomm/pyrat/internal/maze"
)

func placePlayers(cfg PlayerConfig, width, height int, r *rand.Rand) (p1, p2 maze.Coordinate) {
	switch cfg.Mode {
	case CornerPlayers:
		return maze.Coordinate{X: 0, Y: 0}, maze.Coordinate{X: width - 1, Y: height - 1}
	case SymmetricPlayers:
		cells := maze.Cells(width, height)
		if center, ok := maze.Center(width, height); ok {
			cells = removeCell(cells, center)
		}
		p1 = cells[r.IntN(len(cells))]
		return p1, p1.Symmetric(width, height)
	case AsymmetricPlayers:
		cells := maze.Cells(width, height)
		return cells[0], cells[1]
	case CustomPlayers:
		return *cfg.Player1, *cfg.Player2
	}
	panic(assertion("unhandled player mode %v", cfg.Mode))
}

func removeCell(cells []maze.Coordinate, cell maze.Coordinate) []maze.Coordinate {
	for i, c := range cells {
		if c == cell {
			return append(cells[:i], cells[i+1:]...)
		}
	}
	return cells
}
