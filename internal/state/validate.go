package state

// Validate checks the structural invariants every state must hold:
// walls and mud lie on grid edges and never overlap, mud costs are at
// least 2, players and cheese are on the grid and no cheese sits under a
// player.
func (s *GameState) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return Violation("grid %dx%d has no cells", s.Width, s.Height)
	}
	for _, e := range s.Walls.Edges() {
		if !e.Valid(s.Width, s.Height) {
			return Violation("wall %v is not a grid edge", e)
		}
	}
	for _, m := range s.Mud.Entries() {
		if !m.Valid(s.Width, s.Height) {
			return Violation("mud %v is not a grid edge", m.Edge)
		}
		if m.Cost < 2 {
			return Violation("mud %v has cost %d", m.Edge, m.Cost)
		}
		if s.Walls.HasEdge(m.Edge) {
			return Violation("edge %v is both walled and muddy", m.Edge)
		}
	}
	for i, p := range s.Players() {
		if !p.Position.InBounds(s.Width, s.Height) {
			return Violation("player %d is off the grid at %v", i+1, p.Position)
		}
		if s.Cheese.Has(p.Position) {
			return Violation("cheese under player %d at %v", i+1, p.Position)
		}
	}
	for _, c := range s.Cheese.Sorted() {
		if !c.InBounds(s.Width, s.Height) {
			return Violation("cheese off the grid at %v", c)
		}
	}
	return nil
}
