package rand

import (
	"math/rand"

	omwrand "github.com/sw965/omw/math/rand"
)

func Float32Uniform(min, max float32, rng *rand.Rand) float32 {
	return float32(omwrand.Float64Uniform(float64(min), float64(max), rng))
}

func Float32Uniforms(n int, min, max float32, rng *rand.Rand) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = Float32Uniform(min, max, rng)
	}
	return xs
}
