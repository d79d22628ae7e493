package pattern

import (
	"github.com/ojrac/opensimplex-go"
)

// NoiseSource is a smooth, deterministic 3D noise field with values in [0,1].
type NoiseSource interface {
	Sample(x, y, z float64) float64
}

const (
	noiseOctaves = 4
	noiseFalloff = 0.5
)

// SimplexNoise layers a few octaves of OpenSimplex noise, each at twice the
// frequency and half the weight of the previous one.
type SimplexNoise struct {
	noise opensimplex.Noise
}

func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{
		noise: opensimplex.NewNormalized(seed),
	}
}

func (n *SimplexNoise) Sample(x, y, z float64) float64 {
	var total, weight, frequency, amplitude float64 = 0, 0, 1, 1

	for i := 0; i < noiseOctaves; i++ {
		total += n.noise.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		weight += amplitude
		amplitude *= noiseFalloff
		frequency *= 2
	}

	return Clamp(total/weight, 0, 1)
}
