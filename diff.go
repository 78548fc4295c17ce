package fnmath

import (
	"golang.org/x/exp/constraints"
)

func CentralDifference[T constraints.Float](plusY, minusY, h T) T {
	return (plusY - minusY) / (2.0 * h)
}

func NumericalDifferentiation[T constraints.Float](x T, f func(T) T) T {
	h := T(0.001)
	y1 := f(x + h)
	y2 := f(x - h)
	return CentralDifference(y1, y2, h)
}

func NumericalGradient[T constraints.Float](xs []T, f func([]T) T) []T {
	h := T(0.0001)
	n := len(xs)
	grad := make([]T, n)
	for i := 0; i < n; i++ {
		tmp := xs[i]
		xs[i] = tmp + h
		y1 := f(xs)

		xs[i] = tmp - h
		y2 := f(xs)

		grad[i] = (y1 - y2) / (h * 2)
		xs[i] = tmp
	}
	return grad
}
