package constants

import "time"

// Audio Constants
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// EatSoundDuration is the length of the pickup chirp
	EatSoundDuration = 60 * time.Millisecond

	// EatSoundFrequency is the base pitch of the pickup chirp
	EatSoundFrequency = 880.0

	// GameOverSoundDuration is the length of the descending game over tone
	GameOverSoundDuration = 600 * time.Millisecond

	// GameOverSoundFrequency is the starting pitch of the game over tone
	GameOverSoundFrequency = 440.0
)
