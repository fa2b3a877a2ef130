package generator

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"

	"github.com/vancomm/pyrat/internal/maze"
)

func listCheese(cells []maze.Coordinate, p1, p2 maze.Coordinate) (maze.Cheese, error) {
	cheese := maze.NewCheese()
	for _, c := range cells {
		if cheese.Has(c) {
			return maze.Cheese{}, configError("cheese %v listed twice", c)
		}
		if c == p1 || c == p2 {
			panic(assertion("cheese %v placed on a player start", c))
		}
		cheese.Put(c)
	}
	return cheese, nil
}

// symmetricCheese draws count cells in centrally symmetric pairs, away
// from the players and their reflections. An odd count puts one piece on
// the center first.
func symmetricCheese(width, height, count int, p1, p2 maze.Coordinate, r *rand.Rand) (maze.Cheese, error) {
	cheese := maze.NewCheese()
	center, hasCenter := maze.Center(width, height)

	excluded := mapset.New[maze.Coordinate]()
	for _, p := range []maze.Coordinate{p1, p2} {
		excluded.Put(p)
		excluded.Put(p.Symmetric(width, height))
	}

	if count%2 == 1 {
		if !hasCenter {
			return maze.Cheese{}, configError("odd cheese count %d needs odd dimensions", count)
		}
		if excluded.Has(center) {
			return maze.Cheese{}, configError("center %v is occupied by a player", center)
		}
		cheese.Put(center)
	}
	if hasCenter {
		excluded.Put(center)
	}

	candidates := make([]maze.Coordinate, 0, width*height)
	for _, c := range maze.Cells(width, height) {
		if !excluded.Has(c) {
			candidates = append(candidates, c)
		}
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, c := range candidates {
		if cheese.Len() >= count {
			break
		}
		if cheese.Has(c) {
			continue
		}
		cheese.Put(c)
		cheese.Put(c.Symmetric(width, height))
	}
	if cheese.Len() < count {
		return maze.Cheese{}, configError("only %d free cells for %d cheeses", cheese.Len(), count)
	}
	return cheese, nil
}

// asymmetricCheese draws count distinct cells uniformly, away from the
// players.
func asymmetricCheese(width, height, count int, p1, p2 maze.Coordinate, r *rand.Rand) (maze.Cheese, error) {
	candidates := make([]maze.Coordinate, 0, width*height)
	for _, c := range maze.Cells(width, height) {
		if c != p1 && c != p2 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) < count {
		return maze.Cheese{}, configError("only %d free cells for %d cheeses", len(candidates), count)
	}

	// partial Fisher-Yates
	for i := range count {
		j := i + r.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return maze.NewCheese(candidates[:count]...), nil
}
