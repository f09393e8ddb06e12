package testutil

import (
	"math"
	"math/cmplx"
)

// FreqAxis returns n equally spaced frequencies starting at DC.
func FreqAxis(n int, stepHz float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * stepHz
	}
	return out
}

// ConstantSweep returns n identical reflection coefficients, modelling an
// ideal frequency-independent termination (0 matched, 1 open, -1 short).
func ConstantSweep(n int, gamma complex128) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = gamma
	}
	return out
}

// DelaySweep returns reflection coefficients of an ideal full reflection at
// round-trip delay tau: a constant-magnitude, linear-phase ramp
// amplitude * exp(-i*2*pi*f*tau) over frequencies k*stepHz.
func DelaySweep(n int, stepHz, tau, amplitude float64) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		phase := -2 * math.Pi * float64(i) * stepHz * tau
		out[i] = complex(amplitude, 0) * cmplx.Exp(complex(0, phase))
	}
	return out
}
