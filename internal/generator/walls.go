package generator

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/vancomm/pyrat/internal/maze"
)

// randomWalls builds a connected wall set. A shuffled Kruskal pass marks a
// spanning tree as protected, then unprotected edges are walled in random
// order until walls make up density of all edges. With symmetric, walls
// and protections always come in centrally symmetric pairs.
func randomWalls(width, height int, density float64, symmetric bool, r *rand.Rand) maze.Walls {
	edges := maze.GridEdges(width, height)
	total := len(edges)
	r.Shuffle(total, func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	cc := newComponents(width * height)
	protected := mapset.New[maze.Edge]()
	for _, e := range edges {
		if !cc.union(e.A.Index(height), e.B.Index(height)) {
			continue
		}
		protected.Put(e)
		if symmetric {
			s := e.Symmetric(width, height)
			if cc.union(s.A.Index(height), s.B.Index(height)) {
				protected.Put(s)
			}
		}
	}
	if cc.count != 1 {
		panic(assertion("spanning tree left %d components", cc.count))
	}

	pool := make([]maze.Edge, 0, total-protected.Size())
	for _, e := range edges {
		if !protected.Has(e) {
			pool = append(pool, e)
		}
	}
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	walls := maze.NewWalls()
	for _, e := range pool {
		if float64(walls.Len()) >= density*float64(total) {
			break
		}
		if walls.HasEdge(e) {
			continue
		}
		if symmetric {
			s := e.Symmetric(width, height)
			if protected.Has(s) {
				continue
			}
			walls.Add(s.A, s.B)
		}
		walls.Add(e.A, e.B)
	}

	Log.WithFields(logrus.Fields{
		"edges":     total,
		"protected": protected.Size(),
		"walls":     walls.Len(),
	}).Debug("generated walls")
	return walls
}

func customWalls(edges []maze.Edge) maze.Walls {
	return maze.NewWalls(edges...)
}
