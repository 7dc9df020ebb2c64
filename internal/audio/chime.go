// Package audio synthesizes the short tones played when the splash changes
// phase.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/loading-splash/internal/splash"
)

// SampleRate is the rate chimes are generated at.
const SampleRate beep.SampleRate = 44100

// chime is a sine tone with an exponential decay envelope. It implements
// beep.Streamer and ends after its duration.
type chime struct {
	freq   float64
	decay  float64
	total  int
	cursor int
}

// NewChime returns a streamer playing freq Hz for d.
func NewChime(freq float64, d time.Duration) beep.Streamer {
	total := SampleRate.N(d)
	return &chime{
		freq:  freq,
		decay: 5 / math.Max(float64(total), 1),
		total: total,
	}
}

func (c *chime) Stream(samples [][2]float64) (int, bool) {
	if c.cursor >= c.total {
		return 0, false
	}
	n := 0
	for n < len(samples) && c.cursor < c.total {
		t := float64(c.cursor) / float64(SampleRate)
		v := 0.4 * math.Exp(-c.decay*float64(c.cursor)) * math.Sin(2*math.Pi*c.freq*t)
		samples[n][0] = v
		samples[n][1] = v
		n++
		c.cursor++
	}
	return n, true
}

func (c *chime) Err() error { return nil }

// ForPhase returns the chime announcing entry into p, or nil when the phase
// is silent.
func ForPhase(p splash.Phase) beep.Streamer {
	switch p {
	case splash.PhaseMerging:
		return NewChime(660, 250*time.Millisecond)
	case splash.PhaseExpanding:
		return NewChime(880, 400*time.Millisecond)
	}
	return nil
}
