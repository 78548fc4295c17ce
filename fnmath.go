package fnmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

func Exp[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp(v))
	case float64:
		return T(math.Exp(v))
	default:
		return T(math.Exp(float64(x)))
	}
}

func Log[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log(v))
	case float64:
		return T(math.Log(v))
	default:
		return T(math.Log(float64(x)))
	}
}

func Sqrt[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	default:
		return T(math.Sqrt(float64(x)))
	}
}

func Tanh[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Tanh(v))
	case float64:
		return T(math.Tanh(v))
	default:
		return T(math.Tanh(float64(x)))
	}
}

func Erf[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Erf(v))
	case float64:
		return T(math.Erf(v))
	default:
		return T(math.Erf(float64(x)))
	}
}

func Abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func IsNaN[T constraints.Float](x T) bool {
	return x != x
}
