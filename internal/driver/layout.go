package driver

import (
	"math"

	"github.com/iburimskiy/gradient-waves/internal/config"
)

// FitAspect returns the largest canvas with the 800:600 aspect ratio that
// fits inside outsideWidth x outsideHeight.
func FitAspect(outsideWidth, outsideHeight int) (int, int) {
	const aspect = float64(config.CanvasWidth) / float64(config.CanvasHeight)

	maxW, maxH := float64(max(outsideWidth, 1)), float64(max(outsideHeight, 1))

	var w, h float64
	if maxW/aspect <= maxH {
		w, h = maxW, maxW/aspect
	} else {
		w, h = maxH*aspect, maxH
	}

	return max(int(math.Floor(w)), 1), max(int(math.Floor(h)), 1)
}
