package pattern

import (
	"math"
)

// Fade darkens the pattern within Distance pixels of one canvas edge.
//
// Frequency is optional: when zero the fade is a plain linear blend from
// Amount at the edge to 1 at Distance. When set, the fade edge ripples
// horizontally with the animation time.
type Fade struct {
	Enabled   bool
	Distance  float64
	Amount    float64
	Frequency float64
	Reverse   bool
}

// contribution is the multiplier for a point dist pixels away from the edge.
func (f Fade) contribution(dist, x, t float64) float64 {
	if !f.Enabled || f.Distance <= 0 || dist >= f.Distance {
		return 1
	}

	progress := dist / f.Distance

	if f.Frequency == 0 {
		if f.Reverse {
			return 1 - progress*f.Amount
		}
		return Lerp(f.Amount, 1, progress)
	}

	wave := math.Sin(x*f.Frequency+t)*0.2 + 0.8
	if f.Reverse {
		return 1 - progress*f.Amount*wave
	}
	return progress * wave
}

// linear drops the ripple and the reversal, leaving the plain edge blend.
func (f Fade) linear() Fade {
	f.Frequency = 0
	f.Reverse = false
	return f
}

// FadeMultiplier combines the upper and lower fades for a point whose
// center lies fromTop pixels below the top edge and fromBottom pixels above
// the bottom edge. The result is never negative.
func FadeMultiplier(fromTop, fromBottom float64, upper, lower Fade, x, t float64) float64 {
	m := 1.0
	m *= upper.contribution(fromTop, x, t)
	m *= lower.contribution(fromBottom, x, t)

	return max(m, 0)
}
