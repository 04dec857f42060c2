package constants

import "time"

// Spectator Feed Constants
const (
	// SpectatorPath is the websocket endpoint path
	SpectatorPath = "/ws"

	// SpectatorSendQueue is the per-subscriber queue length before frames are dropped
	SpectatorSendQueue = 4

	// SpectatorWriteTimeout bounds a single websocket write
	SpectatorWriteTimeout = 2 * time.Second

	// SpectatorMaxSubscribers caps concurrent spectators
	SpectatorMaxSubscribers = 16
)
