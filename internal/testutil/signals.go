package testutil

import (
	"math"
	"math/rand"
)

// Ramp returns n samples start, start+step, ...
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Constant returns n samples of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Gaussian samples amp*exp(-(x-center)^2 / (2*sigma^2)) at every xs[i].
// It stands in for an emission line on a spectral grid.
func Gaussian(xs []float64, center, sigma, amp float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		d := (x - center) / sigma
		out[i] = amp * math.Exp(-0.5*d*d)
	}
	return out
}

// DeterministicNoise generates uniform values in [-amplitude, amplitude) with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// StepIntegral integrates the piecewise-constant function f(u) = values[floor(u)]
// over the index interval [a, b]. Pixel k covers [k, k+1); the domain ends at
// len(values).
func StepIntegral(values []float64, a, b float64) float64 {
	var sum float64
	for k, v := range values {
		lo := math.Max(a, float64(k))
		hi := math.Min(b, float64(k+1))
		if hi > lo {
			sum += v * (hi - lo)
		}
	}
	return sum
}
