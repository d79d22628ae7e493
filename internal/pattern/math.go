package pattern

import (
	"golang.org/x/exp/constraints"
)

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// progressOf maps index i of count items onto [0,1].
// A single item sits at 0.
func progressOf(i, count int) float64 {
	if count <= 1 {
		return 0
	}
	return Clamp(float64(i)/float64(count-1), 0, 1)
}
