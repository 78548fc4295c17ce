package scalar

import (
	"math"

	"fnmath"
	"golang.org/x/exp/constraints"
)

const invSqrt2Pi = 0.3989422804014327

func IdentityDerivative[T constraints.Float](_ T) T {
	return 1
}

func ReLUDerivative[T constraints.Float](x T) T {
	if x > 0 {
		return 1
	}
	return 0
}

func LeakyReLUDerivative[T constraints.Float](x T) T {
	if x < 0 {
		return 0.01
	}
	return 1
}

func ParamReLUDerivative[T constraints.Float](a T) func(T) (T, T) {
	return func(x T) (T, T) {
		if x < 0 {
			return a, x
		}
		return 1, 0
	}
}

func ELUDerivative[T constraints.Float](a T) func(T) T {
	return func(x T) T {
		if x > 0 {
			return 1
		}
		return a * fnmath.Exp(x)
	}
}

func SELUDerivative[T constraints.Float](x T) T {
	if x < 0 {
		return seluLambda * seluAlpha * fnmath.Exp(x)
	}
	return seluLambda
}

func SigmoidGrad[T constraints.Float](y T) T {
	return y * (1 - y)
}

func SigmoidDerivative[T constraints.Float](x T) T {
	y := Sigmoid(x)
	return SigmoidGrad(y)
}

func TanhGrad[T constraints.Float](y T) T {
	return 1 - y*y
}

func TanhDerivative[T constraints.Float](x T) T {
	y := fnmath.Tanh(x)
	return TanhGrad(y)
}

func SiLUDerivative[T constraints.Float](x T) T {
	s := Sigmoid(x)
	return s + x*SigmoidGrad(s)
}

func SoftplusDerivative[T constraints.Float](x T) T {
	return Sigmoid(x)
}

func MishDerivative[T constraints.Float](x T) T {
	t := fnmath.Tanh(Softplus(x))
	return t + x*TanhGrad(t)*Sigmoid(x)
}

func GELUDerivative[T constraints.Float](x T) T {
	cdf := 0.5 * (1 + fnmath.Erf(x/math.Sqrt2))
	pdf := invSqrt2Pi * fnmath.Exp(-(x*x)/2)
	return cdf + x*pdf
}

func GaussianDerivative[T constraints.Float](x T) T {
	return -2 * x * Gaussian(x)
}
