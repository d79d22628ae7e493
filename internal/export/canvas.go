// Package export rasterizes render passes on the CPU and writes them out
// as still or animated PNG files.
package export

import (
	"image"
	"image/draw"
	"math"

	"github.com/iburimskiy/gradient-waves/internal/pattern"
)

// Canvas is a pattern.Sink backed by an in-memory RGBA image.
// Rectangle edges are rounded to the nearest pixel boundary and clipped.
type Canvas struct {
	Image *image.RGBA
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (c *Canvas) Clear(clr pattern.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), &image.Uniform{C: clr.NRGBA()}, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r pattern.Rect) {
	rect := image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)),
		int(math.Round(r.Y+r.H)),
	).Intersect(c.Image.Bounds())

	if rect.Empty() {
		return
	}
	draw.Draw(c.Image, rect, &image.Uniform{C: r.Color.NRGBA()}, image.Point{}, draw.Src)
}

// Frame renders one pass of snap onto a fresh image.
func Frame(ctx pattern.Context, snap pattern.Snapshot, noise pattern.NoiseSource) *image.RGBA {
	c := NewCanvas(ctx.Width, ctx.Height)
	pattern.Paint(c, pattern.Background, pattern.Render(ctx, snap, noise))
	return c.Image
}

// Frames renders n consecutive passes, advancing time the way the frame
// driver does: by the snapshot's animation speed after every frame.
func Frames(ctx pattern.Context, snap pattern.Snapshot, noise pattern.NoiseSource, n int) []image.Image {
	frames := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, Frame(ctx, snap, noise))
		ctx.Time += snap.AnimationSpeed()
	}
	return frames
}
