package d1

import (
	"fmt"

	"fnmath"
	"fnmath/scalar"
	"github.com/sw965/omw/fn"
	omwmath "github.com/sw965/omw/math"
	"golang.org/x/exp/constraints"
)

func Identity[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.Identity[T])
}

func BinaryStep[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.BinaryStep[T])
}

func ReLU[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.ReLU[T])
}

func ReLUDerivative[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.ReLUDerivative[T])
}

func LeakyReLU[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.LeakyReLU[T])
}

func LeakyReLUDerivative[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.LeakyReLUDerivative[T])
}

func ParamReLU[T constraints.Float](a T) func([]T) []T {
	return func(x []T) []T {
		return fn.Map[[]T](x, scalar.ParamReLU(a))
	}
}

func ParamReLUDerivative[T constraints.Float](a T) func([]T) ([]T, []T) {
	return func(x []T) ([]T, []T) {
		f := scalar.ParamReLUDerivative(a)
		dydx := make([]T, len(x))
		dyda := make([]T, len(x))
		for i, e := range x {
			dydx[i], dyda[i] = f(e)
		}
		return dydx, dyda
	}
}

func ELU[T constraints.Float](a T) func([]T) []T {
	return func(x []T) []T {
		return fn.Map[[]T](x, scalar.ELU(a))
	}
}

func SELU[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.SELU[T])
}

func Sigmoid[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.Sigmoid[T])
}

func SigmoidDerivative[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.SigmoidDerivative[T])
}

func Tanh[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.Tanh[T])
}

func TanhDerivative[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.TanhDerivative[T])
}

func SiLU[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.SiLU[T])
}

func Softplus[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.Softplus[T])
}

func Mish[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.Mish[T])
}

func GELU[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.GELU[T])
}

func Gaussian[T constraints.Float](x []T) []T {
	return fn.Map[[]T](x, scalar.Gaussian[T])
}

func Maxout[T constraints.Float](x []T) (T, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("Maxoutの入力は、最低でも一つの要素を持たなければなりません。")
	}
	return omwmath.Max(x...), nil
}

func Softmax[T constraints.Float](x []T) []T {
	if len(x) == 0 {
		panic("vector length is zero")
	}

	maxX := omwmath.Max(x...) // オーバーフロー対策
	expX := make([]T, len(x))
	for i, e := range x {
		expX[i] = fnmath.Exp(e - maxX)
	}
	sumExpX := omwmath.Sum(expX...)

	y := make([]T, len(x))
	for i := range expX {
		y[i] = expX[i] / sumExpX
	}
	return y
}
