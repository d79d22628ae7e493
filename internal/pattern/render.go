package pattern

import (
	"iter"
)

// Context describes the surface and the moment being rendered.
type Context struct {
	Width  int
	Height int
	Time   float64
}

// Rect is one filled-rectangle draw command.
type Rect struct {
	X, Y, W, H float64
	Color      Color
}

// Sink receives the output of a render pass: one Clear, then the rectangles.
type Sink interface {
	Clear(c Color)
	FillRect(r Rect)
}

// Render returns the draw commands for one frame. The sequence is lazy and
// can be ranged over any number of times with the same result.
func Render(ctx Context, snap Snapshot, noise NoiseSource) iter.Seq[Rect] {
	if snap.Pattern == nil || ctx.Width <= 0 || ctx.Height <= 0 {
		return func(func(Rect) bool) {}
	}
	return snap.Pattern.render(ctx, snap.Gradient, noise)
}

// Paint clears the sink with bg and then replays every command onto it.
func Paint(sink Sink, bg Color, cmds iter.Seq[Rect]) int {
	sink.Clear(bg)

	n := 0
	for r := range cmds {
		sink.FillRect(r)
		n++
	}
	return n
}
