// Package signal holds the parameter model and the pure sampling functions
// for the dual-universe oscilloscope. A Params value fully describes one
// scene: a shared pre-split curve and two independently parametrized
// branches that diverge at the split point. Sampling never mutates state;
// the UI layer owns the single mutable Params record and swaps it whole.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Parameter bounds enforced by the setter operations. Values outside these
// ranges are clamped, not rejected, so slider-style input can never put the
// model in an invalid state.
const (
	MinFrequency = 0.05
	MaxFrequency = 12.0
	MaxAmplitude = 4.0
	MaxNoise     = 1.0
	MaxSlope     = 2.0
)

// Branch parametrizes one post-split continuation. Slope is the linear
// departure from the junction value; Freq and Phase shape the sinusoidal
// term layered on top of it.
type Branch struct {
	Slope     float64 `json:"slope" yaml:"slope"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Freq      float64 `json:"freq" yaml:"freq"`
	Phase     float64 `json:"phase" yaml:"phase"`
}

// Params is the full signal parameter record. It is a value type on
// purpose: handing a copy to the renderer guarantees a frame never observes
// a half-applied mutation.
type Params struct {
	FreqPrimary   float64 `json:"freq_primary" yaml:"freq_primary"`
	FreqSecondary float64 `json:"freq_secondary" yaml:"freq_secondary"`
	Phase         float64 `json:"phase" yaml:"phase"`
	Amplitude     float64 `json:"amplitude" yaml:"amplitude"`
	Noise         float64 `json:"noise" yaml:"noise"`

	// Sampled domain. SplitPoint divides the shared curve from the two
	// branches and must lie within [XMin, XMax].
	XMin       float64 `json:"x_min" yaml:"x_min"`
	XMax       float64 `json:"x_max" yaml:"x_max"`
	SplitPoint float64 `json:"split_point" yaml:"split_point"`

	Upper Branch `json:"upper" yaml:"upper"`
	Lower Branch `json:"lower" yaml:"lower"`
}

// Validate reports the first structural problem with the record.
func (p Params) Validate() error {
	if p.FreqPrimary <= 0 {
		return fmt.Errorf("freq_primary must be positive, got %v", p.FreqPrimary)
	}
	if p.FreqSecondary <= 0 {
		return fmt.Errorf("freq_secondary must be positive, got %v", p.FreqSecondary)
	}
	if p.Amplitude < 0 {
		return fmt.Errorf("amplitude must be non-negative, got %v", p.Amplitude)
	}
	if p.Noise < 0 {
		return fmt.Errorf("noise must be non-negative, got %v", p.Noise)
	}
	if !(p.XMin < p.XMax) {
		return fmt.Errorf("domain [%v, %v] is empty", p.XMin, p.XMax)
	}
	if p.SplitPoint < p.XMin || p.SplitPoint > p.XMax {
		return fmt.Errorf("split_point %v outside domain [%v, %v]", p.SplitPoint, p.XMin, p.XMax)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetFreqPrimary clamps and assigns the primary oscillation rate.
func (p *Params) SetFreqPrimary(v float64) { p.FreqPrimary = clamp(v, MinFrequency, MaxFrequency) }

// SetFreqSecondary clamps and assigns the secondary oscillation rate.
func (p *Params) SetFreqSecondary(v float64) { p.FreqSecondary = clamp(v, MinFrequency, MaxFrequency) }

// SetAmplitude clamps and assigns the curve amplitude.
func (p *Params) SetAmplitude(v float64) { p.Amplitude = clamp(v, 0, MaxAmplitude) }

// SetNoise clamps and assigns the per-sample jitter magnitude.
func (p *Params) SetNoise(v float64) { p.Noise = clamp(v, 0, MaxNoise) }

// SetPhase assigns the shared phase, wrapping into [0, 2π). The wrap is
// cosmetic; sampling is periodic either way.
func (p *Params) SetPhase(v float64) {
	p.Phase = math.Mod(v, 2*math.Pi)
	if p.Phase < 0 {
		p.Phase += 2 * math.Pi
	}
}

// SetSplitPoint clamps the split into the open interior of the domain so a
// branch always has at least a sliver of room.
func (p *Params) SetSplitPoint(v float64) {
	width := p.XMax - p.XMin
	p.SplitPoint = clamp(v, p.XMin+0.05*width, p.XMax-0.05*width)
}

// Jammed returns a fresh record with frequencies, phase, noise and both
// branch shapes regenerated from rng. Domain bounds and amplitude carry
// over. Callers assign the whole result in one step; nothing here touches
// the receiver.
func (p Params) Jammed(rng *rand.Rand) Params {
	next := p
	next.FreqPrimary = MinFrequency + rng.Float64()*(3.0-MinFrequency)
	next.FreqSecondary = MinFrequency + rng.Float64()*(5.0-MinFrequency)
	next.Phase = rng.Float64() * 2 * math.Pi
	next.Noise = rng.Float64() * 0.12
	next.Upper = Branch{
		Slope:     rng.Float64()*MaxSlope - MaxSlope/2,
		Amplitude: 0.2 + rng.Float64()*0.8,
		Freq:      0.5 + rng.Float64()*3.5,
		Phase:     rng.Float64() * 2 * math.Pi,
	}
	next.Lower = Branch{
		Slope:     rng.Float64()*MaxSlope - MaxSlope/2,
		Amplitude: 0.2 + rng.Float64()*0.8,
		Freq:      0.5 + rng.Float64()*3.5,
		Phase:     rng.Float64() * 2 * math.Pi,
	}
	return next
}
