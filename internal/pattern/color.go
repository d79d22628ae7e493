package pattern

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	White      = Color{255, 255, 255}
	Background = Color{20, 20, 20}
)

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func ColorFrom(clr color.Color) Color {
	if clr == nil {
		return Color{}
	}
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return Color{c.R, c.G, c.B}
}

// rgb keeps channels unrounded between transforms.
type rgb [3]float64

func (c Color) rgb() rgb {
	return rgb{float64(c.R), float64(c.G), float64(c.B)}
}

func (v rgb) add(d float64) rgb {
	for i := range v {
		v[i] = clampChannel(v[i] + d)
	}
	return v
}

func (v rgb) scale(m float64) rgb {
	for i := range v {
		v[i] = clampChannel(v[i] * m)
	}
	return v
}

func (v rgb) color() Color {
	return Color{
		R: uint8(math.Round(clampChannel(v[0]))),
		G: uint8(math.Round(clampChannel(v[1]))),
		B: uint8(math.Round(clampChannel(v[2]))),
	}
}

func clampChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 255)
}

// contrast pushes v away from (or pulls it toward) mid-gray.
func contrast(v, amount float64) float64 {
	return clampChannel((v-128)*amount + 128)
}

func interpolate(a, b Color, progress, amount float64) rgb {
	progress = Clamp(progress, 0, 1)
	ca, cb := a.rgb(), b.rgb()

	var out rgb
	for i := range out {
		out[i] = contrast(Lerp(ca[i], cb[i], progress), amount)
	}
	return out
}

// Interpolate blends a toward b by progress and then applies contrast
// to every channel independently. Progress is clamped to [0,1].
func Interpolate(a, b Color, progress, amount float64) Color {
	return interpolate(a, b, progress, amount).color()
}
