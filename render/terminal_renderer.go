package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// TerminalRenderer draws snapshots onto a tcell screen.
// One terminal cell spans cellSize field units on each axis; the top row is the status bar
type TerminalRenderer struct {
	screen   tcell.Screen
	cellSize int

	mu   sync.Mutex
	last engine.GameState
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, cellSize int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		cellSize: cellSize,
	}
}

// Field returns the current play field derived from the screen size.
// Bounds are inclusive, so the last column and row map exactly to Width and Height
func (r *TerminalRenderer) Field() engine.Field {
	width, height := r.screen.Size()
	return FieldFromSize(width, height, r.cellSize)
}

// FieldFromSize converts terminal dimensions into field units
func FieldFromSize(width, height, cellSize int) engine.Field {
	cols := width - 1
	rows := height - constants.StatusBarHeight - 1
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return engine.Field{Width: cols * cellSize, Height: rows * cellSize}
}

// Render implements Renderer
func (r *TerminalRenderer) Render(state engine.GameState) error {
	r.mu.Lock()
	r.last = state
	r.mu.Unlock()

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	pickupStyle := defaultStyle.Foreground(RgbPickup)
	for _, p := range state.Pickups {
		r.drawUnit(p, constants.PickupChar, pickupStyle)
	}

	bodyStyle := defaultStyle.Foreground(RgbSnakeBody)
	for _, p := range state.Snake {
		r.drawUnit(p, constants.SnakeBodyChar, bodyStyle)
	}
	if head, ok := state.Head(); ok {
		r.drawUnit(head, constants.SnakeHeadChar, tcell.StyleDefault.Background(RgbSnakeBody).Foreground(RgbSnakeHead))
	}

	r.drawStatusBar(state)
	r.screen.Show()
	return nil
}

// RenderGameOver implements Renderer, overlaying a banner on the last frame
func (r *TerminalRenderer) RenderGameOver() error {
	r.mu.Lock()
	last := r.last
	r.mu.Unlock()

	width, height := r.screen.Size()
	style := tcell.StyleDefault.Background(RgbGameOverBg).Foreground(RgbGameOver).Bold(true)

	lines := []string{
		constants.GameOverText,
		fmt.Sprintf(" Score: %d ", last.Score),
	}
	y := height / 2
	for i, line := range lines {
		x := (width - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		r.drawText(x, y+i, line, style)
	}

	r.screen.Show()
	return nil
}

// drawUnit maps a field position to its terminal cell, skipping anything off-screen
func (r *TerminalRenderer) drawUnit(p engine.Position, ch rune, style tcell.Style) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	col := p.X / r.cellSize
	row := p.Y/r.cellSize + constants.StatusBarHeight

	width, height := r.screen.Size()
	if col >= width || row >= height {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *TerminalRenderer) drawStatusBar(state engine.GameState) {
	width, _ := r.screen.Size()
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	status := fmt.Sprintf(" Score: %d  Length: %d  Pickups: %d  Tick: %d  %s",
		state.Score, len(state.Snake), len(state.Pickups), state.Tick, constants.QuitHintText)
	r.drawText(0, 0, status, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
