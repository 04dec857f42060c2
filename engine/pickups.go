package engine

import "github.com/lixenwraith/snake/constants"

// PickupField holds a fixed-size set of pickups and respawns the ones the head eats
type PickupField struct {
	cell    int
	random  RandomPositionSource
	pickups []Position
}

// NewPickupField seeds count pickups at random positions within field
func NewPickupField(cell, count int, field Field, random RandomPositionSource) *PickupField {
	pickups := make([]Position, count)
	for i := range pickups {
		pickups[i] = random(field)
	}
	return &PickupField{
		cell:    cell,
		random:  random,
		pickups: pickups,
	}
}

// Pickups returns the current set. Callers must not modify it
func (pf *PickupField) Pickups() []Position {
	return pf.pickups
}

// Update removes every pickup overlapping head, keeps the survivors in order and appends one fresh
// random pickup per removal in the same step, so the cardinality never changes. It reports how many were eaten;
// a non-zero count is the change event. On no change the previous slice is returned as is
func (pf *PickupField) Update(head Position, field Field) ([]Position, int) {
	eaten := 0
	for _, p := range pf.pickups {
		if Overlaps(head, p, pf.cell) {
			eaten++
		}
	}
	if eaten == 0 {
		return pf.pickups, 0
	}

	next := make([]Position, 0, len(pf.pickups))
	for _, p := range pf.pickups {
		if !Overlaps(head, p, pf.cell) {
			next = append(next, p)
		}
	}
	for i := 0; i < eaten; i++ {
		next = append(next, pf.random(field))
	}

	pf.pickups = next
	return next, eaten
}

// GrowthCounter tracks the target snake length
type GrowthCounter struct {
	length int
}

// NewGrowthCounter seeds the target length
func NewGrowthCounter(initial int) *GrowthCounter {
	return &GrowthCounter{length: initial}
}

// Length returns the current target length
func (g *GrowthCounter) Length() int {
	return g.length
}

// Observe grows the target by one when the pickup set changed, regardless of how many were eaten at once
func (g *GrowthCounter) Observe(changed bool) int {
	if changed {
		g.length++
	}
	return g.length
}

// ScoreFor derives the score from the target length. Negative before the first pickup by design of the formula
func ScoreFor(length int) int {
	return (length - constants.ScoreBaseLength) * constants.ScorePerSegment
}

// BodyTracker owns the ordered position history of the snake, oldest first, head last
type BodyTracker struct {
	body []Position
}

// NewBodyTracker seeds the history with a single origin segment
func NewBodyTracker(origin Position) *BodyTracker {
	return &BodyTracker{body: []Position{origin}}
}

// Append adds head and evicts the oldest segments beyond target.
// A fresh slice is built each call so previously published bodies stay intact
func (b *BodyTracker) Append(head Position, target int) []Position {
	if target < 1 {
		target = 1
	}

	start := 0
	if n := len(b.body) + 1; n > target {
		start = n - target
	}

	next := make([]Position, 0, len(b.body)+1-start)
	if start < len(b.body) {
		next = append(next, b.body[start:]...)
	}
	next = append(next, head)

	b.body = next
	return next
}
