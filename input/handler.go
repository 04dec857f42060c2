package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/engine"
)

// Handler routes terminal events: steering keys to the scheduler, quit to the caller
type Handler struct {
	table *KeyTable
	keys  chan engine.DirectionKey
}

// NewHandler creates a handler with a buffered key channel of at least one slot
func NewHandler(table *KeyTable, buffer int) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	if buffer < 1 {
		buffer = 1
	}
	return &Handler{
		table: table,
		keys:  make(chan engine.DirectionKey, buffer),
	}
}

// Keys is the steering stream consumed by the scheduler
func (h *Handler) Keys() <-chan engine.DirectionKey {
	return h.keys
}

// HandleEvent processes a tcell event and returns false if the game should exit.
// When the key buffer is full the oldest key is discarded: only the latest steering matters
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	action := h.table.Lookup(key)
	switch action {
	case ActionQuit:
		return false
	case ActionNone:
		return true
	}

	dir := action.DirectionKey()
	for {
		select {
		case h.keys <- dir:
			return true
		default:
		}
		select {
		case <-h.keys:
		default:
		}
	}
}
