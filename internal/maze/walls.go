package maze

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Walls is the set of blocked edges. Blocking is symmetric since edges are
// unordered. The zero value is an empty set.
type Walls struct {
	set *mapset.Set[Edge]
}

func NewWalls(edges ...Edge) Walls {
	set := mapset.New[Edge]()
	w := Walls{set: &set}
	for _, e := range edges {
		w.Add(e.A, e.B)
	}
	return w
}

// Add blocks the edge between a and b. Reports whether it was open.
func (w *Walls) Add(a, b Coordinate) bool {
	if w.set == nil {
		*w = NewWalls()
	}
	e := NewEdge(a, b)
	if w.set.Has(e) {
		return false
	}
	w.set.Put(e)
	return true
}

func (w Walls) Remove(a, b Coordinate) {
	if w.set != nil {
		w.set.Remove(NewEdge(a, b))
	}
}

func (w Walls) Has(a, b Coordinate) bool {
	return w.set != nil && w.set.Has(NewEdge(a, b))
}

func (w Walls) HasEdge(e Edge) bool {
	return w.Has(e.A, e.B)
}

func (w Walls) Len() int {
	if w.set == nil {
		return 0
	}
	return w.set.Size()
}

// Edges returns the walls sorted.
func (w Walls) Edges() []Edge {
	edges := make([]Edge, 0, w.Len())
	if w.set != nil {
		w.set.Each(func(e Edge) { edges = append(edges, e) })
	}
	slices.SortFunc(edges, Edge.Compare)
	return edges
}

func (w Walls) Clone() Walls {
	return NewWalls(w.Edges()...)
}

func (w Walls) Equal(o Walls) bool {
	if w.Len() != o.Len() {
		return false
	}
	for _, e := range w.Edges() {
		if !o.HasEdge(e) {
			return false
		}
	}
	return true
}

func (w Walls) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Edges())
}

func (w *Walls) UnmarshalJSON(data []byte) error {
	var edges []Edge
	if err := json.Unmarshal(data, &edges); err != nil {
		return err
	}
	*w = NewWalls(edges...)
	return nil
}

func (w Walls) GobEncode() ([]byte, error) {
	return gobEncode(w.Edges())
}

func (w *Walls) GobDecode(data []byte) error {
	var edges []Edge
	if err := gobDecode(data, &edges); err != nil {
		return err
	}
	*w = NewWalls(edges...)
	return nil
}

func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
