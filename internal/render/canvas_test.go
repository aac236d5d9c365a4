package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasDimensions(t *testing.T) {
	c := NewCanvas(20, 5)
	out := c.Render(Frame{Width: 20, Height: 5})

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 5)
	for i, row := range rows {
		assert.Len(t, []rune(row), 20, "row %d", i)
	}
}

func TestCanvasDrawsLine(t *testing.T) {
	c := NewCanvas(10, 4)
	f := Frame{
		Width: 10, Height: 4, DotW: 20, DotH: 16,
		Ops: []Op{
			{Kind: OpMoveTo, X: 0, Y: 8},
			{Kind: OpLineTo, X: 19, Y: 8},
		},
	}
	out := c.Render(f)

	rows := strings.Split(out, "\n")
	// Dot row 8 lives in cell row 2; every cell there should be lit.
	for i, r := range rows[2] {
		assert.NotEqual(t, ' ', r, "cell %d of the line row is blank", i)
	}
	assert.Equal(t, strings.Repeat(" ", 10), rows[0], "top row should stay empty")
}

func TestCanvasPenUpBreaksLine(t *testing.T) {
	c := NewCanvas(10, 2)
	f := Frame{
		Width: 10, Height: 2, DotW: 20, DotH: 8,
		Ops: []Op{
			{Kind: OpMoveTo, X: 0, Y: 4},
			{Kind: OpLineTo, X: 3, Y: 4},
			{Kind: OpPenUp},
			{Kind: OpLineTo, X: 16, Y: 4}, // acts as a move, no bridge
			{Kind: OpLineTo, X: 19, Y: 4},
		},
	}
	out := c.Render(f)

	row := []rune(strings.Split(out, "\n")[1])
	// Cells between the two segments (dot cols 5..15 → cells 3..7 interior)
	// must remain blank.
	for cx := 3; cx <= 6; cx++ {
		assert.Equal(t, ' ', row[cx], "gap cell %d was bridged", cx)
	}
	assert.NotEqual(t, ' ', row[0], "first segment missing")
	assert.NotEqual(t, ' ', row[9], "second segment missing")
}

func TestCanvasMarkerOverlaysDots(t *testing.T) {
	c := NewCanvas(6, 2)
	f := Frame{
		Width: 6, Height: 2, DotW: 12, DotH: 8,
		Ops: []Op{
			{Kind: OpMoveTo, X: 0, Y: 2},
			{Kind: OpLineTo, X: 11, Y: 2},
			{Kind: OpMarker, X: 6, Y: 2},
		},
	}
	out := c.Render(f)

	row := []rune(strings.Split(out, "\n")[0])
	assert.Equal(t, markerRune, row[3], "marker should win over curve dots")
}

func TestCanvasGridRules(t *testing.T) {
	c := NewCanvas(8, 4)
	f := Frame{
		Width: 8, Height: 4, DotW: 16, DotH: 16,
		Ops: []Op{
			{Kind: OpGridH, Y: 8},
			{Kind: OpGridV, X: 6},
		},
	}
	rows := strings.Split(c.Render(f), "\n")

	for cx, r := range []rune(rows[2]) {
		if cx == 3 {
			// The vertical rule is drawn last and wins the intersection.
			assert.Equal(t, '┊', r, "intersection cell")
			continue
		}
		assert.Equal(t, '╌', r, "axis row cell %d", cx)
	}
	for cy := 0; cy < 4; cy++ {
		if cy == 2 {
			continue
		}
		assert.Equal(t, '┊', []rune(rows[cy])[3], "split rule row %d", cy)
	}
}

func TestCanvasResizeKeepsRendering(t *testing.T) {
	c := NewCanvas(4, 2)
	_ = c.Render(Frame{Width: 4, Height: 2})
	out := c.Render(Frame{Width: 12, Height: 6})

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 6)
	assert.Len(t, []rune(rows[0]), 12)
}
