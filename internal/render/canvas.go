package render

import (
	"math"
	"strings"
)

// Braille dot positions (col, row) → bit offset within a cell:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

const markerRune = '●'

// Canvas rasters a Frame's instruction list into terminal rows. Each cell
// is a 2x4 braille dot grid; grid rules use light box-drawing characters
// and the marker overlays a full cell.
type Canvas struct {
	width, height int
	dots          []uint8 // braille bit pattern per cell
	overlay       []rune  // non-braille cell content, 0 when unset
}

// NewCanvas creates a canvas of width×height cells.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		width:   width,
		height:  height,
		dots:    make([]uint8, width*height),
		overlay: make([]rune, width*height),
	}
}

// Resize reallocates the cell buffers for a new surface size.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	*c = *NewCanvas(width, height)
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

func (c *Canvas) clear() {
	for i := range c.dots {
		c.dots[i] = 0
		c.overlay[i] = 0
	}
}

// setDot lights one braille dot given dot-space coordinates.
func (c *Canvas) setDot(dx, dy int) {
	if dx < 0 || dy < 0 || dx >= c.width*2 || dy >= c.height*4 {
		return
	}
	cell := (dy/4)*c.width + dx/2
	c.dots[cell] |= 1 << brailleBits[dx%2][dy%4]
}

func (c *Canvas) setOverlay(cx, cy int, r rune) {
	if cx < 0 || cy < 0 || cx >= c.width || cy >= c.height {
		return
	}
	c.overlay[cy*c.width+cx] = r
}

// line walks dots from (x0,y0) to (x1,y1), both in dot space.
func (c *Canvas) line(x0, y0, x1, y1 float64) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		c.setDot(int(math.Round(x0+(x1-x0)*f)), int(math.Round(y0+(y1-y0)*f)))
	}
}

// Render rasters the frame and returns the canvas as newline-joined rows.
func (c *Canvas) Render(f Frame) string {
	c.Resize(f.Width, f.Height)
	c.clear()

	var penX, penY float64
	penDown := false

	for _, op := range f.Ops {
		switch op.Kind {
		case OpMoveTo:
			penX, penY = op.X, op.Y
			penDown = true
			c.setDot(int(math.Round(penX)), int(math.Round(penY)))
		case OpLineTo:
			if penDown {
				c.line(penX, penY, op.X, op.Y)
			} else {
				c.setDot(int(math.Round(op.X)), int(math.Round(op.Y)))
			}
			penX, penY = op.X, op.Y
			penDown = true
		case OpPenUp:
			penDown = false
		case OpGridV:
			cx := int(math.Round(op.X)) / 2
			for cy := 0; cy < c.height; cy++ {
				c.setOverlay(cx, cy, '┊')
			}
		case OpGridH:
			cy := int(math.Round(op.Y)) / 4
			for cx := 0; cx < c.width; cx++ {
				c.setOverlay(cx, cy, '╌')
			}
		case OpMarker:
			c.setOverlay(int(math.Round(op.X))/2, int(math.Round(op.Y))/4, markerRune)
		}
	}

	rows := make([]string, c.height)
	for cy := 0; cy < c.height; cy++ {
		var line strings.Builder
		for cx := 0; cx < c.width; cx++ {
			idx := cy*c.width + cx
			pattern := c.dots[idx]
			switch {
			case c.overlay[idx] == markerRune:
				line.WriteRune(markerRune)
			case pattern != 0:
				line.WriteRune(rune(0x2800 + int(pattern)))
			case c.overlay[idx] != 0:
				line.WriteRune(c.overlay[idx])
			default:
				line.WriteRune(' ')
			}
		}
		rows[cy] = line.String()
	}
	return strings.Join(rows, "\n")
}
