package audio

import (
	"math"
)

// Meter turns tapped samples into a smoothed loudness level in [0,1].
type Meter struct {
	Smoothing float64
	level     float64
}

func NewMeter(smoothing float64) *Meter {
	return &Meter{Smoothing: smoothing}
}

func (m *Meter) Level() float64 {
	return m.level
}

// Update folds the loudness of samples into the running level.
func (m *Meter) Update(samples [][2]float64) float64 {
	m.level = m.Smoothing*m.level + (1-m.Smoothing)*Loudness(samples)
	return m.level
}

// Decay lets the level fall toward silence when nothing is playing.
func (m *Meter) Decay() float64 {
	m.level *= m.Smoothing
	return m.level
}

// Loudness is the RMS of the mono mix, compressed so quiet passages still register.
func Loudness(samples [][2]float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}

	rms := math.Sqrt(sumSquares / float64(len(samples)))
	return math.Min(math.Pow(rms, 0.3), 1)
}
