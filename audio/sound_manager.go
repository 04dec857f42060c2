package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/snake/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager manages all game audio through a single mixer on the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayEat plays a short rising chirp
func (sm *SoundManager) PlayEat() {
	sm.play(beep.Take(
		sampleRate.N(constants.EatSoundDuration),
		NewChirpGenerator(sampleRate, constants.EatSoundFrequency, constants.EatSoundDuration),
	))
}

// PlayGameOver plays a falling tone
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(
		sampleRate.N(constants.GameOverSoundDuration),
		NewSweepGenerator(sampleRate, constants.GameOverSoundFrequency, constants.GameOverSoundFrequency/4, constants.GameOverSoundDuration),
	))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
