package maze

import (
	"encoding/json"
	"slices"
)

// MudEdge is a muddy edge together with the number of turns crossing it
// takes.
type MudEdge struct {
	Edge
	Cost int `json:"cost"`
}

// Mud maps edges to crossing costs. Costs are symmetric since edges are
// unordered. The zero value is empty.
type Mud struct {
	costs map[Edge]int
}

func NewMud(entries ...MudEdge) Mud {
	m := Mud{costs: make(map[Edge]int, len(entries))}
	for _, e := range entries {
		m.Set(e.A, e.B, e.Cost)
	}
	return m
}

func (m *Mud) Set(a, b Coordinate, cost int) {
	if m.costs == nil {
		m.costs = make(map[Edge]int)
	}
	m.costs[NewEdge(a, b)] = cost
}

func (m Mud) Delete(a, b Coordinate) {
	delete(m.costs, NewEdge(a, b))
}

// Cost returns the crossing cost between a and b, 0 when the edge is not
// muddy.
func (m Mud) Cost(a, b Coordinate) int {
	return m.costs[NewEdge(a, b)]
}

func (m Mud) Has(a, b Coordinate) bool {
	_, ok := m.costs[NewEdge(a, b)]
	return ok
}

func (m Mud) HasEdge(e Edge) bool {
	return m.Has(e.A, e.B)
}

func (m Mud) Len() int {
	return len(m.costs)
}

// Entries returns the muddy edges sorted.
func (m Mud) Entries() []MudEdge {
	entries := make([]MudEdge, 0, len(m.costs))
	for e, cost := range m.costs {
		entries = append(entries, MudEdge{e, cost})
	}
	slices.SortFunc(entries, func(a, b MudEdge) int { return a.Edge.Compare(b.Edge) })
	return entries
}

func (m Mud) Clone() Mud {
	c := Mud{costs: make(map[Edge]int, len(m.costs))}
	for e, cost := range m.costs {
		c.costs[e] = cost
	}
	return c
}

func (m Mud) Equal(o Mud) bool {
	if len(m.costs) != len(o.costs) {
		return false
	}
	for e, cost := range m.costs {
		if other, ok := o.costs[e]; !ok || other != cost {
			return false
		}
	}
	return true
}

func (m Mud) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

func (m *Mud) UnmarshalJSON(data []byte) error {
	var entries []MudEdge
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*m = NewMud(entries...)
	return nil
}

func (m Mud) GobEncode() ([]byte, error) {
	return gobEncode(m.Entries())
}

func (m *Mud) GobDecode(data []byte) error {
	var entries []MudEdge
	if err := gobDecode(data, &entries); err != nil {
		return err
	}
	*m = NewMud(entries...)
	return nil
}
