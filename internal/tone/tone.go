// Package tone renders the current parameter set as an audible binaural
// tone: the primary frequency scaled to an audible carrier on the left
// channel, the secondary frequency layered as a small offset on the right.
// The generator is a beep.Streamer, so it can feed both the speaker and
// the WAV exporter.
package tone

import (
	"math"

	"github.com/faiface/beep"

	"dualscope/internal/signal"
)

// attack is the fade-in length in seconds, applied so the tone does not
// open with a click.
const attack = 0.05

// Binaural streams an endless two-frequency stereo tone using one phase
// accumulator per channel.
type Binaural struct {
	sampleRate float64
	leftHz     float64
	rightHz    float64
	amplitude  float64

	phaseL float64
	phaseR float64
	pos    int
}

// New builds a generator from the parameter record. baseHz scales the
// dimensionless visual frequencies into audible ones: the left channel
// plays FreqPrimary*baseHz and the right channel adds FreqSecondary as a
// beat offset in hertz.
func New(sr beep.SampleRate, p signal.Params, baseHz float64) *Binaural {
	left := p.FreqPrimary * baseHz
	amp := p.Amplitude
	if amp > 1 {
		amp = 1
	}
	if amp < 0 {
		amp = 0
	}
	return &Binaural{
		sampleRate: float64(sr),
		leftHz:     left,
		rightHz:    left + p.FreqSecondary,
		amplitude:  amp,
	}
}

// LeftHz returns the carrier frequency.
func (b *Binaural) LeftHz() float64 { return b.leftHz }

// RightHz returns the offset channel frequency.
func (b *Binaural) RightHz() float64 { return b.rightHz }

// Stream fills buf with stereo samples. It never ends; wrap it in
// beep.Take to bound the duration.
func (b *Binaural) Stream(buf [][2]float64) (int, bool) {
	deltaL := b.leftHz / b.sampleRate
	deltaR := b.rightHz / b.sampleRate
	attackSamples := attack * b.sampleRate

	for i := range buf {
		gain := b.amplitude
		if float64(b.pos) < attackSamples {
			gain *= float64(b.pos) / attackSamples
		}
		buf[i][0] = gain * math.Sin(2*math.Pi*b.phaseL)
		buf[i][1] = gain * math.Sin(2*math.Pi*b.phaseR)

		_, b.phaseL = math.Modf(b.phaseL + deltaL)
		_, b.phaseR = math.Modf(b.phaseR + deltaR)
		b.pos++
	}
	return len(buf), true
}

// Err always returns nil; the generator has no failure mode.
func (b *Binaural) Err() error { return nil }
