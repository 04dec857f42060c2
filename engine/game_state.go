package engine

// GameState is one immutable composed view handed to renderers.
// Snake is oldest-first with the head last
type GameState struct {
	Tick    uint64     `json:"tick"`
	Snake   []Position `json:"snake"`
	Pickups []Position `json:"pickups"`
	Score   int        `json:"score"`
}

// Head returns the last snake segment
func (s GameState) Head() (Position, bool) {
	if len(s.Snake) == 0 {
		return Position{}, false
	}
	return s.Snake[len(s.Snake)-1], true
}

// StateComposer combines the latest body, pickups and score into a snapshot
type StateComposer struct {
	last GameState
}

// Compose builds a snapshot with its own copies of the slices so renderers can hold on to it
func (c *StateComposer) Compose(tick uint64, body, pickups []Position, score int) GameState {
	c.last = GameState{
		Tick:    tick,
		Snake:   append([]Position(nil), body...),
		Pickups: append([]Position(nil), pickups...),
		Score:   score,
	}
	return c.last
}

// Last returns the most recently composed snapshot
func (c *StateComposer) Last() GameState {
	return c.last
}
