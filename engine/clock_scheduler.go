package engine

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
)

// ErrClockStopped is returned when the tick source closes before the game ends
var ErrClockStopped = errors.New("clock stopped")

// ClockScheduler is the single owner of a Game. It folds input as it arrives,
// advances the pipeline once per tick, and publishes Running snapshots to the mailbox
type ClockScheduler struct {
	game    *Game
	ticks   <-chan Tick
	keys    <-chan DirectionKey
	field   FieldSource
	mailbox *SnapshotMailbox

	tickCount atomic.Uint64
	maxDelta  float64
}

// NewClockScheduler wires a game to its tick source, input keys, field bounds and output mailbox
func NewClockScheduler(game *Game, ticks <-chan Tick, keys <-chan DirectionKey, field FieldSource, mailbox *SnapshotMailbox) *ClockScheduler {
	return &ClockScheduler{
		game:    game,
		ticks:   ticks,
		keys:    keys,
		field:   field,
		mailbox: mailbox,
	}
}

// Run blocks until the game is over (nil), ctx is cancelled (ctx.Err()) or the clock stops.
// The mailbox is closed only on game over, so the render side fires its terminal render exactly once
func (cs *ClockScheduler) Run(ctx context.Context) error {
	keys := cs.keys
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case key, ok := <-keys:
			if !ok {
				// Input source gone; keep ticking with the last direction
				keys = nil
				continue
			}
			cs.game.Steer(key)

		case tick, ok := <-cs.ticks:
			if !ok {
				return ErrClockStopped
			}
			if tick.Delta > cs.maxDelta {
				cs.maxDelta = tick.Delta
			}
			keys = cs.drainKeys(keys)
			if cs.processTick() == PhaseOver {
				last := cs.game.Last()
				log.Printf("game over at tick %d: %s, score %d, length %d, eaten %d, max delta %.3fs",
					last.Tick, cs.game.Reason(), last.Score, len(last.Snake), cs.game.Eaten(), cs.maxDelta)
				cs.mailbox.Close()
				return nil
			}
		}
	}
}

// drainKeys folds every key already waiting so the step samples the latest direction.
// Returns nil once the key channel is closed
func (cs *ClockScheduler) drainKeys(keys <-chan DirectionKey) <-chan DirectionKey {
	for keys != nil {
		select {
		case key, ok := <-keys:
			if !ok {
				return nil
			}
			cs.game.Steer(key)
		default:
			return keys
		}
	}
	return nil
}

// processTick executes one pipeline step and publishes the snapshot if the game continues
func (cs *ClockScheduler) processTick() GamePhase {
	state, phase := cs.game.Step(cs.field())
	cs.tickCount.Add(1)
	if phase == PhaseRunning {
		cs.mailbox.Publish(state)
	}
	return phase
}

// TickCount returns the number of processed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}
