package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/gradient-waves/internal/pattern"
)

// screenSink draws render commands straight onto the ebiten screen.
type screenSink struct {
	dst *ebiten.Image
}

func (s screenSink) Clear(c pattern.Color) {
	s.dst.Fill(c.NRGBA())
}

func (s screenSink) FillRect(r pattern.Rect) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color.NRGBA(), false)
}
