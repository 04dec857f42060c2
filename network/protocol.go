package network

import "github.com/lixenwraith/snake/engine"

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	MsgHello    MessageType = "hello"    // First frame on every connection
	MsgState    MessageType = "state"    // One snapshot
	MsgGameOver MessageType = "gameover" // Terminal notification, sent once
)

// Message is the JSON frame sent to spectators
type Message struct {
	Type    MessageType       `json:"type"`
	Session string            `json:"session,omitempty"`
	Field   *engine.Field     `json:"field,omitempty"`
	State   *engine.GameState `json:"state,omitempty"`
}
