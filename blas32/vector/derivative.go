package vector

import (
	"gonum.org/v1/gonum/blas/blas32"
)

func ReLUDerivative(x blas32.Vector) blas32.Vector {
	grad := make([]float32, x.N)
	for i, e := range x.Data {
		if e > 0 {
			grad[i] = 1.0
		}
	}

	x.Data = grad
	return x
}

func LeakyReLUDerivativeWithAlpha(x blas32.Vector, alpha float32) blas32.Vector {
	grad := make([]float32, x.N)
	for i, e := range x.Data {
		if e > 0 {
			grad[i] = 1.0
		} else {
			grad[i] = alpha
		}
	}

	x.Data = grad
	return x
}

func SigmoidGrad(y blas32.Vector) blas32.Vector {
	grad := make([]float32, y.N)
	for i, e := range y.Data {
		grad[i] = e * (1.0 - e)
	}

	y.Data = grad
	return y
}

func TanhGrad(y blas32.Vector) blas32.Vector {
	grad := make([]float32, y.N)
	for i, e := range y.Data {
		grad[i] = 1.0 - (e * e)
	}

	y.Data = grad
	return y
}
