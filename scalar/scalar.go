package scalar

import (
	"math"

	"fnmath"
	"golang.org/x/exp/constraints"
)

const (
	seluLambda = 1.0507
	seluAlpha  = 1.67326
)

func Identity[T constraints.Float](x T) T {
	return x
}

func BinaryStep[T constraints.Float](x T) T {
	if x < 0 {
		return 0
	}
	return 1
}

func Heaviside[T constraints.Float](a, b T) func(T) T {
	return func(x T) T {
		if a*x+b > 0 {
			return 1
		}
		return 0
	}
}

func Linear[T constraints.Float](a, b T) func(T) T {
	return func(x T) T {
		return a*x + b
	}
}

func ReLU[T constraints.Float](x T) T {
	if x > 0 {
		return x
	}
	return 0
}

func LeakyReLU[T constraints.Float](x T) T {
	if x < 0 {
		return 0.01 * x
	}
	return x
}

func ParamReLU[T constraints.Float](a T) func(T) T {
	return func(x T) T {
		if x < 0 {
			return a * x
		}
		return x
	}
}

func ELU[T constraints.Float](a T) func(T) T {
	return func(x T) T {
		if x > 0 {
			return x
		}
		return a * (fnmath.Exp(x) - 1)
	}
}

func SELU[T constraints.Float](x T) T {
	if x < 0 {
		return seluLambda * seluAlpha * (fnmath.Exp(x) - 1)
	}
	return seluLambda * x
}

func Sigmoid[T constraints.Float](x T) T {
	return 1 / (1 + fnmath.Exp(-x))
}

func Tanh[T constraints.Float](x T) T {
	return fnmath.Tanh(x)
}

func SiLU[T constraints.Float](x T) T {
	return x / (1 + fnmath.Exp(-x))
}

func Softplus[T constraints.Float](x T) T {
	return fnmath.Log(1 + fnmath.Exp(x))
}

func Mish[T constraints.Float](x T) T {
	return x * fnmath.Tanh(Softplus(x))
}

func GELU[T constraints.Float](x T) T {
	return 0.5 * x * (1 + fnmath.Erf(x/math.Sqrt2))
}

func Gaussian[T constraints.Float](x T) T {
	return fnmath.Exp(-(x * x))
}

func GaussianRBF[T constraints.Float](c, sigma T) func(T) T {
	return func(x T) T {
		d := x - c
		return fnmath.Exp(-(d * d) / (2 * sigma * sigma))
	}
}

func Multiquadratic[T constraints.Float](c, a T) func(T) T {
	return func(x T) T {
		d := x - c
		return fnmath.Sqrt(d*d + a*a)
	}
}
