// Package conv provides linear convolution for real and complex sequences.
//
// Two strategies are available:
//
//   - Direct convolution: simple O(N*M) time-domain convolution, best for
//     short kernels
//   - FFT-based convolution: frequency-domain multiplication at the next
//     power-of-two size, efficient when both sequences are long
//
// The [Convolve] and [ConvolveComplex] entry points select a strategy based
// on input sizes; the Direct and FFT variants are exported for callers that
// want a fixed algorithm. All functions return the full linear convolution
// of length len(a) + len(b) - 1.
package conv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// directThreshold is the kernel length above which the FFT path wins.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(a)
	m := len(b)
	result := make([]float64, n+m-1)

	// Scale-and-accumulate with vectorized blocks.
	temp := make([]float64, m)
	for i := 0; i < n; i++ {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(result[i:i+m], temp)
	}

	return result, nil
}

// DirectComplex performs direct time-domain linear convolution of complex
// sequences a and b. Returns a new slice of length len(a) + len(b) - 1.
func DirectComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(a)
	m := len(b)
	result := make([]complex128, n+m-1)

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			result[i+j] += a[i] * b[j]
		}
	}

	return result, nil
}

// FFTComplex performs FFT-based linear convolution of complex sequences
// a and b via frequency-domain multiplication at the next power-of-two size.
// Returns a new slice of length len(a) + len(b) - 1.
func FFTComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	outputLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(outputLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	copy(aPadded, a)
	bPadded := make([]complex128, fftSize)
	copy(bPadded, b)

	if err := plan.Forward(aPadded, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bPadded, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aPadded {
		aPadded[i] *= bPadded[i]
	}

	if err := plan.Inverse(aPadded, aPadded); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	return aPadded[:outputLen], nil
}

// Convolve performs real linear convolution with automatic algorithm
// selection: direct for short kernels, FFT-based above the threshold.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Ensure a is the longer sequence.
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	ac := make([]complex128, len(a))
	for i, v := range a {
		ac[i] = complex(v, 0)
	}
	bc := make([]complex128, len(b))
	for i, v := range b {
		bc[i] = complex(v, 0)
	}

	full, err := FFTComplex(ac, bc)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(full))
	for i, v := range full {
		out[i] = real(v)
	}

	return out, nil
}

// ConvolveComplex performs complex linear convolution with automatic
// algorithm selection: direct for short kernels, FFT-based above the
// threshold.
func ConvolveComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return DirectComplex(a, b)
	}

	return FFTComplex(a, b)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
