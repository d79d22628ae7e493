package pattern

import (
	"iter"
)

// StartY is the top of the first line; the block of lines is centered
// vertically and never starts above the canvas.
func (p StaticParams) StartY(canvasHeight int) float64 {
	total := float64(p.LineCount)*(p.LineThickness+p.LineSpacing) - p.LineSpacing
	return max(0, (float64(canvasHeight)-total)/2)
}

// Render emits one full-width rectangle per line that fits on the canvas.
// The output does not depend on ctx.Time.
func (p StaticParams) Render(ctx Context, g Gradient, noise NoiseSource) iter.Seq[Rect] {
	return p.render(ctx, g, noise)
}

func (p StaticParams) render(ctx Context, g Gradient, noise NoiseSource) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		height := float64(ctx.Height)
		startY := p.StartY(ctx.Height)
		upper, lower := p.UpperFade.linear(), p.LowerFade.linear()

		for i := 0; i < p.LineCount; i++ {
			lineY := startY + float64(i)*(p.LineThickness+p.LineSpacing)
			if lineY+p.LineThickness > height {
				return
			}

			c := interpolate(g.Top, g.Bottom, progressOf(i, p.LineCount), p.Contrast)

			if p.NoiseLevel > 0 && noise != nil {
				c = c.add((noise.Sample(float64(i)*0.1, 100, 0) - 0.5) * p.NoiseLevel * 20)
			}

			centerY := lineY + p.LineThickness/2
			fade := FadeMultiplier(centerY, height-centerY, upper, lower, 0, 0)

			r := Rect{
				X:     0,
				Y:     lineY,
				W:     float64(ctx.Width),
				H:     p.LineThickness,
				Color: c.scale(fade).color(),
			}
			if !yield(r) {
				return
			}
		}
	}
}
