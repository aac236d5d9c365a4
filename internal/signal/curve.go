package signal

import (
	"math"
	"math/rand"
)

// domainEpsilon guards the normalized-phase denominators against a
// zero-width domain. Numeric-stability clamp only; a validated Params never
// gets near it.
const domainEpsilon = 1e-9

// driftRate is the slow time-based phase drift applied to the shared curve,
// in radians per second of animation time. Zero at t=0 so snapshots taken
// at the origin match the static formula.
const driftRate = 0.35

// norm maps x into [0,1] across [lo, hi] with the denominator clamped.
func norm(x, lo, hi float64) float64 {
	width := hi - lo
	if math.Abs(width) < domainEpsilon {
		width = domainEpsilon
	}
	return (x - lo) / width
}

// baseAt evaluates the shared pre-split curve without any domain check.
// BranchValue uses it to anchor the junction, so it must stay total.
func baseAt(p Params, x, t float64) float64 {
	u := norm(x, p.XMin, p.XMax)
	primary := p.Amplitude * math.Sin(2*math.Pi*p.FreqPrimary*u+p.Phase+driftRate*t)
	secondary := 0.5 * p.Amplitude * math.Sin(2*math.Pi*p.FreqSecondary*u)
	return primary + secondary
}

// BaseValue samples the shared curve. Outside its active region
// [XMin, SplitPoint] it returns NaN, which the renderer treats as a pen-up
// instruction rather than an error.
func BaseValue(p Params, x, t float64) float64 {
	if x < p.XMin || x > p.SplitPoint {
		return math.NaN()
	}
	return baseAt(p, x, t)
}

// BranchValue samples one post-split continuation. The branch is active on
// [SplitPoint, XMax]; elsewhere it returns NaN.
//
// At x == SplitPoint the sinusoidal shape term cancels exactly, so the
// returned value is bit-for-bit baseAt(p, SplitPoint, t): both branches and
// the shared curve meet at the junction no matter how their slopes and
// shapes differ.
func BranchValue(p Params, b Branch, x, t float64) float64 {
	if x < p.SplitPoint || x > p.XMax {
		return math.NaN()
	}
	anchor := baseAt(p, p.SplitPoint, t)
	u := norm(x, p.SplitPoint, p.XMax)
	shape := b.Amplitude * (math.Sin(2*math.Pi*b.Freq*u+b.Phase) - math.Sin(b.Phase))
	return anchor + b.Slope*(x-p.SplitPoint) + shape
}

// PhasePosition maps the current shared phase, including drift, to a
// domain coordinate. The renderer parks its travelling marker there.
func PhasePosition(p Params, t float64) float64 {
	turns := (p.Phase + driftRate*t) / (2 * math.Pi)
	frac := turns - math.Floor(turns)
	return p.XMin + frac*(p.XMax-p.XMin)
}

// Jitter returns v displaced by uniform noise of magnitude p.Noise.
// Non-finite values pass through untouched so a pen-up sample stays one.
func Jitter(p Params, v float64, rng *rand.Rand) float64 {
	if p.Noise == 0 || !isFinite(v) {
		return v
	}
	return v + (rng.Float64()*2-1)*p.Noise
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
