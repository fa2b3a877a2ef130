package maze

import (
	"cmp"
	"fmt"
)

// Coordinate is a cell of a W×H grid. (0, 0) is the bottom-left corner,
// y grows upwards.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Compare orders coordinates by X, then by Y.
func (c Coordinate) Compare(o Coordinate) int {
	if n := cmp.Compare(c.X, o.X); n != 0 {
		return n
	}
	return cmp.Compare(c.Y, o.Y)
}

func (c Coordinate) Less(o Coordinate) bool {
	return c.Compare(o) < 0
}

func (c Coordinate) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Symmetric returns the image of c under the central symmetry of a
// width×height grid.
func (c Coordinate) Symmetric(width, height int) Coordinate {
	return Coordinate{width - 1 - c.X, height - 1 - c.Y}
}

// Adjacent reports whether o shares a side with c.
func (c Coordinate) Adjacent(o Coordinate) bool {
	dx, dy := o.X-c.X, o.Y-c.Y
	return dx*dx+dy*dy == 1
}

// Neighbors returns the in-bounds cells adjacent to c in Up, Left, Down,
// Right order.
func (c Coordinate) Neighbors(width, height int) []Coordinate {
	result := make([]Coordinate, 0, 4)
	for _, m := range Directions {
		if n := m.Apply(c); n.InBounds(width, height) {
			result = append(result, n)
		}
	}
	return result
}

// Index maps c to its position in the x-major enumeration of a grid with
// the given height.
func (c Coordinate) Index(height int) int {
	return c.X*height + c.Y
}

// Cells enumerates every cell of the grid in x-major order.
func Cells(width, height int) []Coordinate {
	cells := make([]Coordinate, 0, width*height)
	for x := range width {
		for y := range height {
			cells = append(cells, Coordinate{x, y})
		}
	}
	return cells
}

// Center returns the fixed point of the central symmetry. It exists only
// when both dimensions are odd.
func Center(width, height int) (Coordinate, bool) {
	if width%2 == 0 || height%2 == 0 {
		return Coordinate{}, false
	}
	return Coordinate{width / 2, height / 2}, true
}
