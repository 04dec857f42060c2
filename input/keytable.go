package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/engine"
)

// Action is what a key press means to the game
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionUp
	ActionRight
	ActionDown
	ActionQuit
)

// DirectionKey converts a steering action to the pipeline's key, KeyNone otherwise
func (a Action) DirectionKey() engine.DirectionKey {
	switch a {
	case ActionLeft:
		return engine.KeyLeft
	case ActionUp:
		return engine.KeyUp
	case ActionRight:
		return engine.KeyRight
	case ActionDown:
		return engine.KeyDown
	default:
		return engine.KeyNone
	}
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Plain rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns arrows, vi hjkl and wasd steering plus the quit keys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyUp:     ActionUp,
			tcell.KeyRight:  ActionRight,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'h': ActionLeft,
			'k': ActionUp,
			'l': ActionRight,
			'j': ActionDown,
			'a': ActionLeft,
			'w': ActionUp,
			'd': ActionRight,
			's': ActionDown,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event; unknown keys map to ActionNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
