package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransformIdempotent(t *testing.T) {
	tr := NewTransform(2)

	tr.Apply(160, 96, 0, 10, -2, 2)
	x1, y1 := tr.Dot(3.5, 0.75)

	// Re-applying with unchanged inputs must not compound the scale.
	for i := 0; i < 10; i++ {
		tr.Apply(160, 96, 0, 10, -2, 2)
	}
	x2, y2 := tr.Dot(3.5, 0.75)

	if x1 != x2 || y1 != y2 {
		t.Errorf("mapping drifted after re-apply: (%v,%v) != (%v,%v)", x1, y1, x2, y2)
	}
}

func TestTransformCorners(t *testing.T) {
	const pad = 2
	tr := NewTransform(pad)
	tr.Apply(100, 40, 0, 10, -1, 1)

	// Domain corners land on the padded edges, y inverted.
	gotX, gotY := tr.Dot(0, 1)
	if gotX != pad || gotY != pad {
		t.Errorf("top-left corner at (%v,%v), want (%d,%d)", gotX, gotY, pad, pad)
	}
	gotX, gotY = tr.Dot(10, -1)
	if wantX, wantY := float64(100-pad-1), float64(40-pad-1); gotX != wantX || gotY != wantY {
		t.Errorf("bottom-right corner at (%v,%v), want (%v,%v)", gotX, gotY, wantX, wantY)
	}
}

func TestTransformDegenerateDomain(t *testing.T) {
	tr := NewTransform(0)
	tr.Apply(80, 40, 5, 5, 0, 0) // zero-width in both axes

	x, y := tr.Dot(5, 0)
	for _, v := range []float64{x, y} {
		if v != v || v > 1e12 || v < -1e12 {
			t.Fatalf("degenerate domain produced unusable coordinate %v", v)
		}
	}
}

func TestTransformResetIsIdentity(t *testing.T) {
	tr := NewTransform(3)
	tr.Apply(80, 40, 0, 1, 0, 1)
	tr.Reset()

	x, y := tr.Dot(7, 11)
	if diff := cmp.Diff([]float64{7, 11}, []float64{x, y}); diff != "" {
		t.Errorf("reset transform not identity (-want +got):\n%s", diff)
	}
}
