package engine

// DirectionKey is a logical directional input
type DirectionKey uint8

const (
	KeyNone DirectionKey = iota
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
)

// String returns the key name
func (k DirectionKey) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyRight:
		return "Right"
	case KeyDown:
		return "Down"
	default:
		return "None"
	}
}

// DirectionTracker folds directional input into the current movement vector
type DirectionTracker struct {
	cell    int
	current Direction
}

// NewDirectionTracker seeds the tracker with the initial direction
func NewDirectionTracker(cell int, initial Direction) *DirectionTracker {
	return &DirectionTracker{cell: cell, current: initial}
}

// Current returns the most recently accepted direction
func (t *DirectionTracker) Current() Direction {
	return t.current
}

// Steer applies one input event and reports whether the direction changed.
// The candidate adds one cell on the key's axis to the current vector and zeroes the other axis;
// a zero candidate is a reversal and is discarded. Accepted candidates are normalised to one cell
func (t *DirectionTracker) Steer(key DirectionKey) (Direction, bool) {
	var next Direction
	switch key {
	case KeyLeft:
		next = Direction{X: t.clamp(t.current.X - t.cell)}
	case KeyRight:
		next = Direction{X: t.clamp(t.current.X + t.cell)}
	case KeyUp:
		next = Direction{Y: t.clamp(t.current.Y - t.cell)}
	case KeyDown:
		next = Direction{Y: t.clamp(t.current.Y + t.cell)}
	default:
		return t.current, false
	}

	if next.IsZero() || next == t.current {
		return t.current, false
	}
	t.current = next
	return next, true
}

// clamp keeps the sign of v with magnitude one cell
func (t *DirectionTracker) clamp(v int) int {
	switch {
	case v > 0:
		return t.cell
	case v < 0:
		return -t.cell
	default:
		return 0
	}
}

// HeadTracker integrates the sampled direction into an absolute head position
type HeadTracker struct {
	head Position
}

// NewHeadTracker places the head at its start position
func NewHeadTracker(start Position) *HeadTracker {
	return &HeadTracker{head: start}
}

// Head returns the last computed head position
func (h *HeadTracker) Head() Position {
	return h.head
}

// Advance moves the head by dir. No clamping: leaving the field is detected downstream
func (h *HeadTracker) Advance(dir Direction) Position {
	h.head = h.head.Add(dir)
	return h.head
}
