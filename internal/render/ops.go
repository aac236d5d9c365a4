package render

// OpKind discriminates draw instructions.
type OpKind int

const (
	// OpMoveTo lifts the pen and moves it to (X, Y).
	OpMoveTo OpKind = iota
	// OpLineTo draws from the pen position to (X, Y).
	OpLineTo
	// OpPenUp lifts the pen without moving it; the next OpLineTo is
	// treated as OpMoveTo. Emitted wherever a sample was non-finite.
	OpPenUp
	// OpGridV draws a vertical rule through dot column X.
	OpGridV
	// OpGridH draws a horizontal rule through dot row Y.
	OpGridH
	// OpMarker places the phase marker at (X, Y).
	OpMarker
)

func (k OpKind) String() string {
	switch k {
	case OpMoveTo:
		return "moveto"
	case OpLineTo:
		return "lineto"
	case OpPenUp:
		return "penup"
	case OpGridV:
		return "gridv"
	case OpGridH:
		return "gridh"
	case OpMarker:
		return "marker"
	}
	return "unknown"
}

// Op is one draw instruction in dot coordinates.
type Op struct {
	Kind OpKind
	X, Y float64
}

// Frame is the complete instruction list for one tick plus the dot surface
// it was laid out for.
type Frame struct {
	Ops    []Op
	DotW   int
	DotH   int
	Width  int // cell columns
	Height int // cell rows
}
