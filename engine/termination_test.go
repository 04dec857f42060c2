package engine

import "testing"

func TestTerminationGate(t *testing.T) {
	field := Field{Width: 100, Height: 100}

	tests := []struct {
		name   string
		snake  []Position
		phase  GamePhase
		reason GameOverReason
	}{
		{"inside", []Position{{10, 10}, {15, 10}}, PhaseRunning, ReasonNone},
		{"on inclusive edge", []Position{{100, 100}}, PhaseRunning, ReasonNone},
		{"past right edge", []Position{{100, 10}, {105, 10}}, PhaseOver, ReasonOutOfField},
		{"past top edge", []Position{{10, 0}, {10, -5}}, PhaseOver, ReasonOutOfField},
		{"two segments never self collide", []Position{{10, 10}, {10, 10}}, PhaseRunning, ReasonNone},
		{"head on earlier segment", []Position{{25, 10}, {30, 10}, {30, 15}, {25, 15}, {25, 10}}, PhaseOver, ReasonSelfCollision},
		{"head beside earlier segment", []Position{{25, 10}, {30, 10}, {30, 15}, {25, 15}}, PhaseRunning, ReasonNone},
		{"empty snake", nil, PhaseRunning, ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewTerminationGate(5)
			phase := gate.Check(GameState{Snake: tt.snake}, field)
			if phase != tt.phase {
				t.Errorf("Expected phase %s, got %s", tt.phase, phase)
			}
			if gate.Reason() != tt.reason {
				t.Errorf("Expected reason %q, got %q", tt.reason, gate.Reason())
			}
		})
	}
}

func TestTerminationGateIsSticky(t *testing.T) {
	field := Field{Width: 100, Height: 100}
	gate := NewTerminationGate(5)

	gate.Check(GameState{Snake: []Position{{-5, 0}}}, field)
	if gate.Phase() != PhaseOver {
		t.Fatalf("Expected Over, got %s", gate.Phase())
	}

	if phase := gate.Check(GameState{Snake: []Position{{50, 50}}}, field); phase != PhaseOver {
		t.Errorf("Expected Over to be terminal, got %s", phase)
	}
	if gate.Reason() != ReasonOutOfField {
		t.Errorf("Expected first reason to be kept, got %q", gate.Reason())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRunning.String() != "Running" || PhaseOver.String() != "Over" {
		t.Errorf("Unexpected phase names %q, %q", PhaseRunning, PhaseOver)
	}
	if GamePhase(9).String() != "Unknown" {
		t.Errorf("Expected Unknown for invalid phase, got %q", GamePhase(9))
	}
}
