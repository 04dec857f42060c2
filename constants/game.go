package constants

import "time"

// Game Loop Timing Constants
const (
	// GameUpdateInterval is the pipeline tick interval; lower is faster
	GameUpdateInterval = 20 * time.Millisecond

	// MaxTickLag is how many intervals the clock may fall behind before it re-anchors
	MaxTickLag = 2
)

// Field & Movement Constants
const (
	// CellSize is the unit of movement and collision granularity
	CellSize = 5

	// PickupCount is the fixed cardinality of the pickup set
	PickupCount = 200

	// HeadStartX, HeadStartY is the initial head position (interior point)
	HeadStartX = 10
	HeadStartY = 10

	// BodyOriginX, BodyOriginY seeds the body history, distinct from the head start
	BodyOriginX = 0
	BodyOriginY = 0

	// InitialTargetLength is the target length before any pickup is eaten
	InitialTargetLength = 1

	// ScorePerSegment is the score awarded per segment beyond the base length
	ScorePerSegment = 10

	// ScoreBaseLength is the target length that scores zero
	ScoreBaseLength = 2

	// SelfCollisionMinLength is the shortest body that can collide with itself
	SelfCollisionMinLength = 3
)
