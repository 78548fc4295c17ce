package vector

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"slices"
	"math/rand"
	frand "fnmath/math/rand"
)

func New(data []float32) blas32.Vector {
	return blas32.Vector{
		N:    len(data),
		Inc:  1,
		Data: data,
	}
}

func NewZeros(n int) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float32, n),
	}
}

func NewZerosLike(vec blas32.Vector) blas32.Vector {
	return NewZeros(vec.N)
}

func NewRandUniform(n int, min, max float32, rng *rand.Rand) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = frand.Float32Uniform(min, max, rng)
	}
	return vec
}

func NewRandUniformLike(vec blas32.Vector, min, max float32, rng *rand.Rand) blas32.Vector {
	return NewRandUniform(vec.N, min, max, rng)
}

func Clone(vec blas32.Vector) blas32.Vector {
	return blas32.Vector{
		N:vec.N,
		Inc:vec.Inc,
		Data:slices.Clone(vec.Data),
	}
}

func Equal(a, b blas32.Vector) bool {
	return a.N == b.N && slices.Equal(a.Data, b.Data)
}

func Add(a, b blas32.Vector) blas32.Vector {
	y := Clone(b)
	blas32.Axpy(1.0, a, y)
	return y
}

func Scal(a float32, x blas32.Vector) blas32.Vector {
	y := Clone(x)
	blas32.Scal(a, y)
	return y
}

func Affine(x blas32.Vector, w blas32.General, b blas32.Vector) blas32.Vector {
	yn := len(b.Data)
	y := blas32.Vector{N: yn, Inc: 1, Data: make([]float32, yn)}
	blas32.Copy(b, y)
	blas32.Gemv(blas.Trans, 1.0, w, x, 1.0, y)
	return y
}
