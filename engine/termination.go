package engine

import "github.com/lixenwraith/snake/constants"

// GamePhase is the termination state machine: Running until the first collision, then Over for good
type GamePhase uint8

const (
	PhaseRunning GamePhase = iota
	PhaseOver
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GameOverReason records which predicate ended the game
type GameOverReason uint8

const (
	ReasonNone GameOverReason = iota
	ReasonOutOfField
	ReasonSelfCollision
)

// String returns the reason name
func (r GameOverReason) String() string {
	switch r {
	case ReasonOutOfField:
		return "out of field"
	case ReasonSelfCollision:
		return "self collision"
	default:
		return "none"
	}
}

// TerminationGate evaluates the game over predicate once per snapshot
type TerminationGate struct {
	cell   int
	phase  GamePhase
	reason GameOverReason
}

// NewTerminationGate creates a gate in the Running phase
func NewTerminationGate(cell int) *TerminationGate {
	return &TerminationGate{cell: cell}
}

// Phase returns the current phase
func (g *TerminationGate) Phase() GamePhase {
	return g.phase
}

// Reason returns why the game ended, ReasonNone while running
func (g *TerminationGate) Reason() GameOverReason {
	return g.reason
}

// Check transitions Running -> Over when the snapshot's head is outside field
// or overlaps an earlier segment of a snake at least three long. Over is terminal
func (g *TerminationGate) Check(state GameState, field Field) GamePhase {
	if g.phase == PhaseOver {
		return g.phase
	}

	if reason := g.evaluate(state.Snake, field); reason != ReasonNone {
		g.phase = PhaseOver
		g.reason = reason
	}
	return g.phase
}

func (g *TerminationGate) evaluate(snake []Position, field Field) GameOverReason {
	if len(snake) == 0 {
		return ReasonNone
	}
	head := snake[len(snake)-1]
	if !field.Contains(head) {
		return ReasonOutOfField
	}
	if len(snake) < constants.SelfCollisionMinLength {
		return ReasonNone
	}
	for _, segment := range snake[:len(snake)-1] {
		if Overlaps(head, segment, g.cell) {
			return ReasonSelfCollision
		}
	}
	return ReasonNone
}
