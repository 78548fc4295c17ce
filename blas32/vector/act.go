package vector

import (
	"fmt"

	"github.com/chewxy/math32"
	omath "github.com/sw965/omw/math"
	"gonum.org/v1/gonum/blas/blas32"
)

const (
	seluLambda float32 = 1.0507
	seluAlpha  float32 = 1.67326
)

func ReLU(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		if e > 0 {
			y[i] = e
		}
	}

	x.Data = y
	return x
}

func LeakyReLUWithAlpha(x blas32.Vector, alpha float32) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		if e > 0 {
			y[i] = e
		} else {
			y[i] = alpha * e
		}
	}

	x.Data = y
	return x
}

func ELUWithAlpha(x blas32.Vector, alpha float32) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		if e > 0 {
			y[i] = e
		} else {
			y[i] = alpha * (math32.Exp(e) - 1)
		}
	}

	x.Data = y
	return x
}

func SELU(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		if e < 0 {
			y[i] = seluLambda * seluAlpha * (math32.Exp(e) - 1)
		} else {
			y[i] = seluLambda * e
		}
	}

	x.Data = y
	return x
}

func Sigmoid(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		y[i] = 1 / (1 + math32.Exp(-e))
	}

	x.Data = y
	return x
}

func Tanh(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		y[i] = math32.Tanh(e)
	}

	x.Data = y
	return x
}

func SiLU(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		y[i] = e / (1 + math32.Exp(-e))
	}

	x.Data = y
	return x
}

func Softplus(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		y[i] = math32.Log(1 + math32.Exp(e))
	}

	x.Data = y
	return x
}

func Mish(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		y[i] = e * math32.Tanh(math32.Log(1+math32.Exp(e)))
	}

	x.Data = y
	return x
}

func GELU(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		y[i] = 0.5 * e * (1 + math32.Erf(e/math32.Sqrt2))
	}

	x.Data = y
	return x
}

func Gaussian(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		y[i] = math32.Exp(-(e * e))
	}

	x.Data = y
	return x
}

func Linear(a float32, x blas32.Vector, b float32) blas32.Vector {
	y := Clone(x)
	blas32.Scal(a, y)
	for i := range y.Data {
		y.Data[i] += b
	}
	return y
}

func Softmax(x blas32.Vector) blas32.Vector {
	if x.N == 0 {
		panic("vector length is zero")
	}

	maxX := omath.Max(x.Data...) // オーバーフロー対策
	expX := make([]float32, x.N)
	var sumExpX float32 = 0.0
	for i, e := range x.Data {
		expX[i] = math32.Exp(e - maxX)
		sumExpX += expX[i]
	}

	y := make([]float32, x.N)
	for i := range expX {
		y[i] = expX[i] / sumExpX
	}

	x.Data = y
	return x
}

func Maxout(x blas32.Vector) (float32, error) {
	if x.N == 0 {
		return 0, fmt.Errorf("Maxoutの入力は、最低でも一つの要素を持たなければなりません。")
	}
	return omath.Max(x.Data...), nil
}
