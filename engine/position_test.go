package engine

import "testing"

func TestFieldContains(t *testing.T) {
	field := Field{Width: 100, Height: 50}

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"origin", Position{0, 0}, true},
		{"far corner inclusive", Position{100, 50}, true},
		{"center", Position{50, 25}, true},
		{"past right edge", Position{101, 0}, false},
		{"past left edge", Position{-1, 0}, false},
		{"past bottom edge", Position{0, 51}, false},
		{"past top edge", Position{0, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := field.Contains(tt.pos); got != tt.want {
				t.Errorf("Expected Contains(%v) = %v, got %v", tt.pos, tt.want, got)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	const cell = 5
	origin := Position{0, 0}

	tests := []struct {
		name  string
		other Position
		want  bool
	}{
		{"same point", Position{0, 0}, true},
		{"inside box", Position{4, 4}, true},
		{"inside box negative", Position{-4, -4}, true},
		{"one cell right", Position{5, 0}, false},
		{"one cell left", Position{-5, 0}, false},
		{"one cell down", Position{0, 5}, false},
		{"close on x, far on y", Position{1, 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(origin, tt.other, cell); got != tt.want {
				t.Errorf("Expected Overlaps(%v, %v) = %v, got %v", origin, tt.other, tt.want, got)
			}
			if got := Overlaps(tt.other, origin, cell); got != tt.want {
				t.Errorf("Expected overlap to be symmetric for %v", tt.other)
			}
		})
	}
}

func TestPositionAdd(t *testing.T) {
	got := Position{10, 10}.Add(Direction{X: -5})
	if got != (Position{5, 10}) {
		t.Errorf("Expected (5,10), got %v", got)
	}
}

func TestSeededSourceDeterministic(t *testing.T) {
	field := Field{Width: 395, Height: 110}
	a := NewSeededSource(42)
	b := NewSeededSource(42)

	for i := 0; i < 500; i++ {
		pa, pb := a(field), b(field)
		if pa != pb {
			t.Fatalf("Draw %d: expected identical positions, got %v and %v", i, pa, pb)
		}
		if !field.Contains(pa) {
			t.Fatalf("Draw %d: position %v outside %v", i, pa, field)
		}
	}
}

func TestSeededSourceDegenerateField(t *testing.T) {
	src := NewSeededSource(7)
	if got := src(Field{}); got != (Position{}) {
		t.Errorf("Expected origin for empty field, got %v", got)
	}
}
