package maze

import "fmt"

// Edge is an unordered pair of adjacent cells. A is always the smaller
// coordinate so that equal edges compare equal.
type Edge struct {
	A Coordinate `json:"a"`
	B Coordinate `json:"b"`
}

func NewEdge(a, b Coordinate) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{a, b}
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.A, e.B)
}

func (e Edge) Compare(o Edge) int {
	if n := e.A.Compare(o.A); n != 0 {
		return n
	}
	return e.B.Compare(o.B)
}

func (e Edge) Valid(width, height int) bool {
	return e.A.InBounds(width, height) && e.B.InBounds(width, height) && e.A.Adjacent(e.B)
}

func (e Edge) Symmetric(width, height int) Edge {
	return NewEdge(e.A.Symmetric(width, height), e.B.Symmetric(width, height))
}

// GridEdges enumerates every edge of the grid, each cell followed by its
// right then upper neighbour, cells in x-major order.
func GridEdges(width, height int) []Edge {
	edges := make([]Edge, 0, 2*width*height)
	for x := range width {
		for y := range height {
			c := Coordinate{x, y}
			if x+1 < width {
				edges = append(edges, Edge{c, Coordinate{x + 1, y}})
			}
			if y+1 < height {
				edges = append(edges, Edge{c, Coordinate{x, y + 1}})
			}
		}
	}
	return edges
}
