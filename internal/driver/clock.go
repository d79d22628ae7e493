// Package driver holds the frame-driver state that outlives a single
// render pass: the animation clock and the canvas size.
package driver

import (
	"github.com/iburimskiy/gradient-waves/internal/pattern"
)

// Clock is the animation time shared by every frame. It only moves forward.
type Clock struct {
	time   float64
	frames uint64
}

func NewClock(start float64) *Clock {
	return &Clock{time: max(start, 0)}
}

func (c *Clock) Now() float64 {
	return c.time
}

func (c *Clock) Frames() uint64 {
	return c.frames
}

// Advance steps the clock after a frame of snap has been rendered.
// Only animated patterns move time forward.
func (c *Clock) Advance(snap pattern.Snapshot) {
	c.frames++
	if snap.Mode() != pattern.ModeWave {
		return
	}
	c.time += max(snap.AnimationSpeed(), 0)
}
