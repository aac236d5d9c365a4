// Package render turns a sampled signal into draw instructions and rasters
// them onto a braille cell canvas. The instruction list is the unit of
// testability: a frame can be inspected without any terminal attached.
package render

import "math"

// Transform is the affine domain→dot-space mapping rebuilt each frame.
// Apply always starts from identity, so applying it any number of times
// with the same inputs yields the same mapping; there is no accumulated
// scale to drift.
type Transform struct {
	padding int

	scaleX, scaleY float64
	offX, offY     float64
	width, height  int
}

// NewTransform creates a transform that keeps the given dot padding free on
// every edge of the surface.
func NewTransform(padding int) *Transform {
	return &Transform{padding: padding}
}

// Reset drops the transform back to identity.
func (tr *Transform) Reset() {
	tr.scaleX, tr.scaleY = 1, 1
	tr.offX, tr.offY = 0, 0
	tr.width, tr.height = 0, 0
}

// Apply resets and derives the mapping from a dot surface of width×height
// and the domain extents. Degenerate extents are clamped the same way the
// sampling functions clamp theirs.
func (tr *Transform) Apply(width, height int, xMin, xMax, yMin, yMax float64) {
	tr.Reset()
	tr.width, tr.height = width, height

	dx := xMax - xMin
	if math.Abs(dx) < 1e-9 {
		dx = 1e-9
	}
	dy := yMax - yMin
	if math.Abs(dy) < 1e-9 {
		dy = 1e-9
	}

	innerW := float64(width - 2*tr.padding - 1)
	innerH := float64(height - 2*tr.padding - 1)
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	tr.scaleX = innerW / dx
	tr.scaleY = -innerH / dy // dot rows grow downward
	tr.offX = float64(tr.padding) - xMin*tr.scaleX
	tr.offY = float64(tr.padding) - yMax*tr.scaleY
}

// Dot maps a domain point to dot coordinates.
func (tr *Transform) Dot(x, y float64) (float64, float64) {
	return x*tr.scaleX + tr.offX, y*tr.scaleY + tr.offY
}

// Size returns the dot surface dimensions the transform was applied for.
func (tr *Transform) Size() (int, int) {
	return tr.width, tr.height
}
