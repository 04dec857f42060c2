package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator generates a short sine blip that rises an octave while decaying
type ChirpGenerator struct {
	sr      beep.SampleRate
	freq    float64
	samples int
	pos     int
	phase   float64
}

// NewChirpGenerator creates a chirp at the base frequency lasting d
func NewChirpGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		freq:    freq,
		samples: max(sr.N(d), 1),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)

		// One octave up over the duration, exponential decay
		freq := g.freq * (1 + progress)
		envelope := math.Exp(-4 * progress)

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.3 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// SweepGenerator generates a linear frequency sweep with a fade out
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from one frequency to another over d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)
		freq := g.from + (g.to-g.from)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Square-ish tone softened by a third harmonic
		sample := 0.25*math.Sin(g.phase) + 0.08*math.Sin(3*g.phase)
		sample *= 1 - progress

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
