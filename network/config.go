package network

import (
	"time"

	"github.com/lixenwraith/snake/constants"
)

// Config holds spectator feed configuration
type Config struct {
	// Address to bind, empty disables the feed
	Address string

	// Path of the websocket endpoint
	Path string

	// Connection limits
	MaxSubscribers int

	// Timing
	WriteTimeout time.Duration

	// Frames queued per subscriber before new frames are dropped
	SendQueueSize int
}

// DefaultConfig returns defaults bound to addr
func DefaultConfig(addr string) *Config {
	return &Config{
		Address:        addr,
		Path:           constants.SpectatorPath,
		MaxSubscribers: constants.SpectatorMaxSubscribers,
		WriteTimeout:   constants.SpectatorWriteTimeout,
		SendQueueSize:  constants.SpectatorSendQueue,
	}
}

// Enabled reports whether the feed should be served
func (c *Config) Enabled() bool {
	return c != nil && c.Address != ""
}
