package signal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func testParams() Params {
	return Params{
		FreqPrimary:   1.2,
		FreqSecondary: 2.3,
		Phase:         math.Pi / 3,
		Amplitude:     1.0,
		XMin:          0,
		XMax:          10,
		SplitPoint:    4,
		Upper:         Branch{Slope: 0.5, Amplitude: 0.7, Freq: 2.1, Phase: 1.3},
		Lower:         Branch{Slope: -0.4, Amplitude: 0.9, Freq: 1.7, Phase: 2.9},
	}
}

func TestJunctionContinuity(t *testing.T) {
	p := testParams()

	for _, tm := range []float64{0, 0.1, 1, 7.77, 123.456, 10000} {
		base := BaseValue(p, p.SplitPoint, tm)
		up := BranchValue(p, p.Upper, p.SplitPoint, tm)
		lo := BranchValue(p, p.Lower, p.SplitPoint, tm)

		require.False(t, math.IsNaN(base), "base must be defined at the split point")
		assert.InDelta(t, base, up, tol, "upper branch diverges at junction, t=%v", tm)
		assert.InDelta(t, base, lo, tol, "lower branch diverges at junction, t=%v", tm)
	}
}

func TestJunctionSlopesDiffer(t *testing.T) {
	p := testParams()
	const h = 1e-6

	slopeOf := func(b Branch) float64 {
		v0 := BranchValue(p, b, p.SplitPoint, 0)
		v1 := BranchValue(p, b, p.SplitPoint+h, 0)
		return (v1 - v0) / h
	}

	// Value continuity must not force derivative continuity.
	assert.Greater(t, math.Abs(slopeOf(p.Upper)-slopeOf(p.Lower)), 0.01)
}

func TestOutOfDomainIsNaN(t *testing.T) {
	p := testParams()

	for _, x := range []float64{-5, -0.001, 4.001, 11, 1e9} {
		if x > p.SplitPoint || x < p.XMin {
			assert.True(t, math.IsNaN(BaseValue(p, x, 0)), "base at x=%v", x)
		}
	}
	for _, x := range []float64{-1, 0, 3.999, 10.001, 42} {
		assert.True(t, math.IsNaN(BranchValue(p, p.Upper, x, 0)), "upper at x=%v", x)
		assert.True(t, math.IsNaN(BranchValue(p, p.Lower, x, 0)), "lower at x=%v", x)
	}
}

func TestBaseValueAtOrigin(t *testing.T) {
	// At x=XMin, t=0 the secondary sinusoid and the drift both vanish, so
	// the sample reduces to amplitude*sin(phase).
	p := testParams()
	got := BaseValue(p, 0, 0)
	assert.InDelta(t, p.Amplitude*math.Sin(p.Phase), got, tol)
}

func TestZeroWidthDomainClamped(t *testing.T) {
	p := testParams()
	p.SplitPoint = p.XMax // branch domain collapses to a point

	v := BranchValue(p, p.Upper, p.XMax, 0)
	assert.False(t, math.IsNaN(v), "clamped denominator must keep the sample finite")
	assert.False(t, math.IsInf(v, 0))
}

func TestJitter(t *testing.T) {
	p := testParams()
	p.Noise = 0.25
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		v := BaseValue(p, 2, 0)
		j := Jitter(p, v, rng)
		assert.LessOrEqual(t, math.Abs(j-v), p.Noise)
	}

	// Pen-up samples must stay pen-up.
	assert.True(t, math.IsNaN(Jitter(p, math.NaN(), rng)))

	// Zero noise is the identity.
	p.Noise = 0
	v := BaseValue(p, 2, 0)
	assert.Equal(t, v, Jitter(p, v, rng))
}
