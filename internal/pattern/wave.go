package pattern

import (
	"iter"
	"math"
)

// ColumnStride is the width in pixels of one sampled wave column.
const ColumnStride = 2

// BandHeight is the height of every band once the spacing is taken out.
func (p WaveParams) BandHeight(canvasHeight int) float64 {
	count := float64(max(p.BandCount, 1))
	h := math.Floor((float64(canvasHeight) - p.BandSpacing*(count-1)) / count)
	return max(1, h)
}

// Render emits one rectangle per sampled column per visible band.
func (p WaveParams) Render(ctx Context, g Gradient, noise NoiseSource) iter.Seq[Rect] {
	return p.render(ctx, g, noise)
}

func (p WaveParams) render(ctx Context, g Gradient, noise NoiseSource) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		height := float64(ctx.Height)
		bandHeight := p.BandHeight(ctx.Height)

		dir := 1.0
		if p.ReverseWave {
			dir = -1
		}

		for i := 0; i < p.BandCount; i++ {
			bandY := float64(i) * (bandHeight + p.BandSpacing)
			if bandY >= height {
				return
			}

			base := interpolate(g.Top, g.Bottom, progressOf(i, p.BandCount), p.Contrast)

			for x := 0; x < ctx.Width; x += ColumnStride {
				fx := float64(x)

				waveOffset := math.Sin(fx*p.WaveFrequency+ctx.Time*dir) * p.WaveAmplitude
				var noiseOffset float64
				if noise != nil && p.NoiseLevel != 0 && p.WaveAmplitude != 0 {
					n := noise.Sample(fx*0.008, float64(i)*0.1, ctx.Time*0.3)
					noiseOffset = (n - 0.5) * p.NoiseLevel * p.WaveAmplitude
				}
				y := bandY + waveOffset + noiseOffset

				centerY := y + bandHeight/2
				fade := FadeMultiplier(centerY, height-centerY, p.UpperFade, p.LowerFade, fx, ctx.Time)

				r := Rect{
					X:     fx,
					Y:     y,
					W:     ColumnStride,
					H:     bandHeight,
					Color: base.scale(fade).color(),
				}
				if !yield(r) {
					return
				}
			}
		}
	}
}
