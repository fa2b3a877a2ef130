package maze

import (
	"encoding/json"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Cheese is the set of cells still holding a piece of cheese. The zero
// value is empty.
type Cheese struct {
	set *mapset.Set[Coordinate]
}

func NewCheese(cells ...Coordinate) Cheese {
	set := mapset.New[Coordinate]()
	c := Cheese{set: &set}
	for _, cell := range cells {
		c.set.Put(cell)
	}
	return c
}

func (c *Cheese) Put(cell Coordinate) {
	if c.set == nil {
		*c = NewCheese()
	}
	c.set.Put(cell)
}

// Take removes the cheese at cell and reports whether there was one.
func (c Cheese) Take(cell Coordinate) bool {
	if !c.Has(cell) {
		return false
	}
	c.set.Remove(cell)
	return true
}

func (c Cheese) Has(cell Coordinate) bool {
	return c.set != nil && c.set.Has(cell)
}

func (c Cheese) Len() int {
	if c.set == nil {
		return 0
	}
	return c.set.Size()
}

// Sorted returns the cheese cells in lexicographic order.
func (c Cheese) Sorted() []Coordinate {
	cells := make([]Coordinate, 0, c.Len())
	if c.set != nil {
		c.set.Each(func(cell Coordinate) { cells = append(cells, cell) })
	}
	slices.SortFunc(cells, Coordinate.Compare)
	return cells
}

func (c Cheese) Clone() Cheese {
	return NewCheese(c.Sorted()...)
}

func (c Cheese) Equal(o Cheese) bool {
	if c.Len() != o.Len() {
		return false
	}
	for _, cell := range c.Sorted() {
		if !o.Has(cell) {
			return false
		}
	}
	return true
}

func (c Cheese) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Sorted())
}

func (c *Cheese) UnmarshalJSON(data []byte) error {
	var cells []Coordinate
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	*c = NewCheese(cells...)
	return nil
}

func (c Cheese) GobEncode() ([]byte, error) {
	return gobEncode(c.Sorted())
}

func (c *Cheese) GobDecode(data []byte) error {
	var cells []Coordinate
	if err := gobDecode(data, &cells); err != nil {
		return err
	}
	*c = NewCheese(cells...)
	return nil
}
