package render

import "github.com/lixenwraith/snake/engine"

// Renderer consumes snapshots. It must not mutate the snapshot it receives.
// RenderGameOver is called exactly once, after the last snapshot
type Renderer interface {
	Render(state engine.GameState) error
	RenderGameOver() error
}

// Fanout forwards every call to each renderer in order, stopping at the first error
type Fanout []Renderer

// Render implements Renderer
func (f Fanout) Render(state engine.GameState) error {
	for _, r := range f {
		if err := r.Render(state); err != nil {
			return err
		}
	}
	return nil
}

// RenderGameOver implements Renderer
func (f Fanout) RenderGameOver() error {
	for _, r := range f {
		if err := r.RenderGameOver(); err != nil {
			return err
		}
	}
	return nil
}
