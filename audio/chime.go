package audio

import (
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// Player is the sound surface the chime renderer needs
type Player interface {
	PlayEat()
	PlayGameOver()
}

// ChimeRenderer turns snapshots into sound: a chirp whenever the score rises, a tone on game over.
// It never fails, so sound problems cannot stop the game
type ChimeRenderer struct {
	player    Player
	lastScore int
}

// NewChimeRenderer creates a chime renderer playing through player
func NewChimeRenderer(player Player) *ChimeRenderer {
	return &ChimeRenderer{
		player:    player,
		lastScore: engine.ScoreFor(constants.InitialTargetLength),
	}
}

// Render implements render.Renderer
func (c *ChimeRenderer) Render(state engine.GameState) error {
	if state.Score > c.lastScore {
		c.player.PlayEat()
	}
	c.lastScore = state.Score
	return nil
}

// RenderGameOver implements render.Renderer
func (c *ChimeRenderer) RenderGameOver() error {
	c.player.PlayGameOver()
	return nil
}
