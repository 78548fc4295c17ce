package fnmath_test

import (
	"math"
	"testing"

	"fnmath"
	"github.com/chewxy/math32"
	omwrand "github.com/sw965/omw/math/rand"
)

func TestExp(t *testing.T) {
	r := omwrand.NewMt19937()
	for i := 0; i < 100; i++ {
		x := omwrand.Float64Uniform(-10.0, 10.0, r)
		if fnmath.Exp(x) != math.Exp(x) {
			t.Errorf("テスト失敗 x = %v", x)
		}

		x32 := float32(x)
		if fnmath.Exp(x32) != math32.Exp(x32) {
			t.Errorf("テスト失敗 x = %v", x32)
		}
	}
}

func TestLog(t *testing.T) {
	r := omwrand.NewMt19937()
	for i := 0; i < 100; i++ {
		x := omwrand.Float64Uniform(0.001, 100.0, r)
		if fnmath.Log(x) != math.Log(x) {
			t.Errorf("テスト失敗 x = %v", x)
		}

		x32 := float32(x)
		if fnmath.Log(x32) != math32.Log(x32) {
			t.Errorf("テスト失敗 x = %v", x32)
		}
	}
}

func TestSqrt(t *testing.T) {
	r := omwrand.NewMt19937()
	for i := 0; i < 100; i++ {
		x := omwrand.Float64Uniform(0.0, 100.0, r)
		if fnmath.Sqrt(x) != math.Sqrt(x) {
			t.Errorf("テスト失敗 x = %v", x)
		}

		x32 := float32(x)
		if fnmath.Sqrt(x32) != math32.Sqrt(x32) {
			t.Errorf("テスト失敗 x = %v", x32)
		}
	}
}

func TestTanh(t *testing.T) {
	r := omwrand.NewMt19937()
	for i := 0; i < 100; i++ {
		x := omwrand.Float64Uniform(-5.0, 5.0, r)
		if fnmath.Tanh(x) != math.Tanh(x) {
			t.Errorf("テスト失敗 x = %v", x)
		}

		x32 := float32(x)
		if fnmath.Tanh(x32) != math32.Tanh(x32) {
			t.Errorf("テスト失敗 x = %v", x32)
		}
	}
}

func TestErf(t *testing.T) {
	r := omwrand.NewMt19937()
	for i := 0; i < 100; i++ {
		x := omwrand.Float64Uniform(-3.0, 3.0, r)
		if fnmath.Erf(x) != math.Erf(x) {
			t.Errorf("テスト失敗 x = %v", x)
		}

		x32 := float32(x)
		if fnmath.Erf(x32) != math32.Erf(x32) {
			t.Errorf("テスト失敗 x = %v", x32)
		}
	}
}

func TestNumericalDifferentiation(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	r := omwrand.NewMt19937()
	for i := 0; i < 100; i++ {
		x := omwrand.Float64Uniform(-10.0, 10.0, r)
		grad := fnmath.NumericalDifferentiation(x, f)
		diff := math.Abs(grad - 2.0*x)
		if diff > 0.0001 {
			t.Errorf("テスト失敗 x = %v grad = %v", x, grad)
		}
	}
}

func TestNumericalGradient(t *testing.T) {
	f := func(xs []float64) float64 {
		y := 0.0
		for _, x := range xs {
			y += x * x
		}
		return y
	}

	r := omwrand.NewMt19937()
	xs := make([]float64, 8)
	for i := range xs {
		xs[i] = omwrand.Float64Uniform(-5.0, 5.0, r)
	}

	grad := fnmath.NumericalGradient(xs, f)
	for i := range grad {
		diff := math.Abs(grad[i] - 2.0*xs[i])
		if diff > 0.0001 {
			t.Errorf("テスト失敗 i = %v grad = %v", i, grad[i])
		}
	}
}
