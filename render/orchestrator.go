package render

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/snake/engine"
)

// ErrRenderFailed wraps any renderer failure. It is fatal for the whole game
var ErrRenderFailed = errors.New("render failed")

// Orchestrator drains the snapshot mailbox into a renderer.
// Snapshots replaced before they are taken are never rendered
type Orchestrator struct {
	mailbox  *engine.SnapshotMailbox
	renderer Renderer

	rendered uint64
}

// NewOrchestrator creates an orchestrator reading from mailbox
func NewOrchestrator(mailbox *engine.SnapshotMailbox, renderer Renderer) *Orchestrator {
	return &Orchestrator{
		mailbox:  mailbox,
		renderer: renderer,
	}
}

// Run renders snapshots until game over (nil after the terminal render), ctx cancellation (ctx.Err())
// or the first render failure (wrapped ErrRenderFailed). There is no retry
func (o *Orchestrator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case state := <-o.mailbox.Snapshots():
			if err := o.render(state); err != nil {
				return err
			}

		case <-o.mailbox.Done():
			if state, ok := o.mailbox.TryTake(); ok {
				if err := o.render(state); err != nil {
					return err
				}
			}
			if err := o.renderer.RenderGameOver(); err != nil {
				log.Printf("game over render failed: %v", err)
				return fmt.Errorf("%w: game over: %w", ErrRenderFailed, err)
			}
			log.Printf("render finished: %d rendered, %d dropped", o.rendered, o.mailbox.Dropped())
			return nil
		}
	}
}

func (o *Orchestrator) render(state engine.GameState) error {
	if err := o.renderer.Render(state); err != nil {
		log.Printf("render failed at tick %d: %v", state.Tick, err)
		return fmt.Errorf("%w: tick %d: %w", ErrRenderFailed, state.Tick, err)
	}
	o.rendered++
	return nil
}

// Rendered returns how many snapshots reached the renderer
func (o *Orchestrator) Rendered() uint64 {
	return o.rendered
}
