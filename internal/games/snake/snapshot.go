package snake

// Snapshot captures the observable game state for determinism tests and
// debugging.
type Snapshot struct {
	Frame    uint64
	Tick     uint64
	Score    int
	SnakeLen int
	Head     Position
	Dot      Position
	Dir      Direction
	Growing  bool
	State    State
}

// Snapshot returns the current state.
func (a *Arcade) Snapshot() Snapshot {
	if a.game == nil {
		return Snapshot{}
	}
	s := a.game.Snake()
	return Snapshot{
		Frame:    a.frame,
		Tick:     a.tick,
		Score:    a.game.Score(),
		SnakeLen: s.Len(),
		Head:     s.Head(),
		Dot:      a.game.Dot().Position(),
		Dir:      s.Direction(),
		Growing:  s.Growing(),
		State:    a.game.State(),
	}
}
