package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/snake/constants"
)

// Config holds the game tuning. Zero values are not meaningful; start from DefaultConfig
type Config struct {
	CellSize         int
	PickupCount      int
	TickInterval     time.Duration
	HeadStart        Position
	BodyOrigin       Position
	InitialDirection Direction
	InitialLength    int
	Seed             uint64
}

// DefaultConfig returns the stock game tuning
func DefaultConfig() Config {
	return Config{
		CellSize:         constants.CellSize,
		PickupCount:      constants.PickupCount,
		TickInterval:     constants.GameUpdateInterval,
		HeadStart:        Position{X: constants.HeadStartX, Y: constants.HeadStartY},
		BodyOrigin:       Position{X: constants.BodyOriginX, Y: constants.BodyOriginY},
		InitialDirection: Direction{X: constants.CellSize},
		InitialLength:    constants.InitialTargetLength,
	}
}

// Validate rejects configurations the pipeline cannot run with
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.PickupCount < 0 {
		return fmt.Errorf("pickup count must not be negative, got %d", c.PickupCount)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("initial length must be at least 1, got %d", c.InitialLength)
	}
	return nil
}

// Game runs the derivation stages in fixed order, once per Step.
// Each stage owns its accumulator; only immutable snapshots leave the Game
type Game struct {
	direction *DirectionTracker
	head      *HeadTracker
	pickups   *PickupField
	growth    *GrowthCounter
	body      *BodyTracker
	composer  *StateComposer
	gate      *TerminationGate

	steps uint64
	eaten int
}

// NewGame builds the pipeline, seeding pickups within field using random
func NewGame(cfg Config, field Field, random RandomPositionSource) *Game {
	return &Game{
		direction: NewDirectionTracker(cfg.CellSize, cfg.InitialDirection),
		head:      NewHeadTracker(cfg.HeadStart),
		pickups:   NewPickupField(cfg.CellSize, cfg.PickupCount, field, random),
		growth:    NewGrowthCounter(cfg.InitialLength),
		body:      NewBodyTracker(cfg.BodyOrigin),
		composer:  &StateComposer{},
		gate:      NewTerminationGate(cfg.CellSize),
	}
}

// Steer folds one input event into the direction. Ignored once the game is over
func (g *Game) Steer(key DirectionKey) bool {
	if g.gate.Phase() == PhaseOver {
		return false
	}
	_, changed := g.direction.Steer(key)
	return changed
}

// Step advances the pipeline by one tick:
// direction sample -> head -> pickups -> growth/score -> body -> compose -> termination check.
// The returned snapshot must only be rendered while the phase is Running.
// After Over, Step returns the zero snapshot and does no work
func (g *Game) Step(field Field) (GameState, GamePhase) {
	if g.gate.Phase() == PhaseOver {
		return GameState{}, PhaseOver
	}
	g.steps++

	head := g.head.Advance(g.direction.Current())

	pickups, eaten := g.pickups.Update(head, field)
	if eaten > 0 {
		g.eaten++
	}
	length := g.growth.Observe(eaten > 0)
	score := ScoreFor(length)

	body := g.body.Append(head, length)

	state := g.composer.Compose(g.steps, body, pickups, score)
	return state, g.gate.Check(state, field)
}

// Phase returns the termination phase
func (g *Game) Phase() GamePhase {
	return g.gate.Phase()
}

// Reason returns why the game ended
func (g *Game) Reason() GameOverReason {
	return g.gate.Reason()
}

// Eaten returns the number of eat events so far
func (g *Game) Eaten() int {
	return g.eaten
}

// Last returns the most recently composed snapshot, including the one that ended the game
func (g *Game) Last() GameState {
	return g.composer.Last()
}
