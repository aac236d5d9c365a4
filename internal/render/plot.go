package render

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/harmonica"

	"dualscope/internal/signal"
)

// Plotter samples a parameter record into a Frame. It owns the per-session
// transform, the jitter source and the spring that smooths the phase marker
// between ticks. Not safe for concurrent use; the driver calls it from a
// single goroutine.
type Plotter struct {
	tr    *Transform
	steps int
	rng   *rand.Rand

	spring       harmonica.Spring
	markerX      float64
	markerY      float64
	markerVX     float64
	markerVY     float64
	markerWarmed bool
}

// NewPlotter creates a plotter sampling the domain at the given step count.
// fps tunes marker smoothing to the tick rate.
func NewPlotter(steps, fps int, rng *rand.Rand) *Plotter {
	if steps < 2 {
		steps = 2
	}
	if fps < 1 {
		fps = 1
	}
	return &Plotter{
		tr:     NewTransform(2),
		steps:  steps,
		rng:    rng,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 7.5, 0.6),
	}
}

// verticalExtent estimates the half-height of the drawn scene so the
// transform can fit every curve including branch fan-out.
func verticalExtent(p signal.Params) float64 {
	ext := 1.5*p.Amplitude + p.Noise
	run := p.XMax - p.SplitPoint
	for _, b := range []signal.Branch{p.Upper, p.Lower} {
		if e := 1.5*p.Amplitude + math.Abs(b.Slope)*run + 2*b.Amplitude; e > ext {
			ext = e
		}
	}
	if ext < 1 {
		ext = 1
	}
	return ext
}

// Frame lays out one tick onto a width×height cell surface. The transform
// is re-derived from scratch every call, so repeated frames with unchanged
// parameters and size are identical apart from noise jitter.
func (pl *Plotter) Frame(p signal.Params, t float64, width, height int) Frame {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}
	dotW, dotH := width*2, height*4

	ext := verticalExtent(p)
	pl.tr.Apply(dotW, dotH, p.XMin, p.XMax, -ext, ext)

	f := Frame{DotW: dotW, DotH: dotH, Width: width, Height: height}

	// Rules first so curves draw over them.
	_, axisY := pl.tr.Dot(p.XMin, 0)
	f.Ops = append(f.Ops, Op{Kind: OpGridH, Y: axisY})
	splitX, _ := pl.tr.Dot(p.SplitPoint, 0)
	f.Ops = append(f.Ops, Op{Kind: OpGridV, X: splitX})

	pl.trace(&f, p, func(x float64) float64 { return signal.BaseValue(p, x, t) })
	pl.trace(&f, p, func(x float64) float64 { return signal.BranchValue(p, p.Upper, x, t) })
	pl.trace(&f, p, func(x float64) float64 { return signal.BranchValue(p, p.Lower, x, t) })

	pl.marker(&f, p, t)
	return f
}

// trace samples one curve across the full domain, breaking the polyline at
// every non-finite sample instead of connecting across the gap.
func (pl *Plotter) trace(f *Frame, p signal.Params, eval func(x float64) float64) {
	penDown := false
	for i := 0; i <= pl.steps; i++ {
		x := p.XMin + (p.XMax-p.XMin)*float64(i)/float64(pl.steps)
		y := signal.Jitter(p, eval(x), pl.rng)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			if penDown {
				f.Ops = append(f.Ops, Op{Kind: OpPenUp})
				penDown = false
			}
			continue
		}
		dx, dy := pl.tr.Dot(x, y)
		if penDown {
			f.Ops = append(f.Ops, Op{Kind: OpLineTo, X: dx, Y: dy})
		} else {
			f.Ops = append(f.Ops, Op{Kind: OpMoveTo, X: dx, Y: dy})
			penDown = true
		}
	}
	if penDown {
		f.Ops = append(f.Ops, Op{Kind: OpPenUp})
	}
}

// marker places the travelling phase dot, spring-smoothed so preset swaps
// and jams glide instead of teleporting.
func (pl *Plotter) marker(f *Frame, p signal.Params, t float64) {
	x := signal.PhasePosition(p, t)
	y := signal.BaseValue(p, x, t)
	if math.IsNaN(y) {
		up := signal.BranchValue(p, p.Upper, x, t)
		lo := signal.BranchValue(p, p.Lower, x, t)
		y = (up + lo) / 2
	}
	if math.IsNaN(y) {
		return
	}
	tx, ty := pl.tr.Dot(x, y)

	if !pl.markerWarmed {
		pl.markerX, pl.markerY = tx, ty
		pl.markerWarmed = true
	}
	pl.markerX, pl.markerVX = pl.spring.Update(pl.markerX, pl.markerVX, tx)
	pl.markerY, pl.markerVY = pl.spring.Update(pl.markerY, pl.markerVY, ty)

	f.Ops = append(f.Ops, Op{Kind: OpMarker, X: pl.markerX, Y: pl.markerY})
}

// ResetMarker forgets the spring state so the next frame snaps the marker
// straight to its target. Used by the explicit reset action.
func (pl *Plotter) ResetMarker() {
	pl.markerWarmed = false
	pl.markerVX, pl.markerVY = 0, 0
}
