package spectrum

import (
	"fmt"
	"math/cmplx"
)

// MirrorHermitian reconstructs a conjugate-symmetric double-sided spectrum
// from a one-sided spectrum that starts at DC.
//
// The result is the input followed by the reversed conjugate of all bins
// except the first, so the output length is 2*len(in) - 1. An inverse
// transform of such a spectrum is real-valued.
func MirrorHermitian(in []complex128) []complex128 {
	if len(in) == 0 {
		return nil
	}

	out := make([]complex128, 0, 2*len(in)-1)
	out = append(out, in...)
	for i := len(in) - 1; i >= 1; i-- {
		out = append(out, cmplx.Conj(in[i]))
	}

	return out
}

// FFTShift moves the zero-frequency bin to the center of the spectrum by
// circularly rolling the input forward by len(in)/2 bins.
func FFTShift(in []complex128) []complex128 {
	return roll(in, len(in)/2)
}

// IFFTShift undoes the centering produced by [FFTShift] by circularly
// rolling the input backward by len(in)/2 bins.
//
// FFTShift and IFFTShift may legitimately be applied at different lengths:
// a centered spectrum that has been zero-padded with [PadCentered] is
// unshifted at the padded length.
func IFFTShift(in []complex128) []complex128 {
	return roll(in, -(len(in) / 2))
}

// PadCentered zero-pads a centered spectrum to length n, splitting the
// padding as (n-len)/2 + 1 bins before and the remainder after.
//
// The asymmetric split keeps the true center bin aligned so that a
// subsequent [IFFTShift] at length n returns it to the zero-frequency
// position. n must exceed the input length.
func PadCentered(in []complex128, n int) ([]complex128, error) {
	if n <= len(in) {
		return nil, fmt.Errorf("spectrum: pad target %d must exceed spectrum length %d", n, len(in))
	}

	before := (n-len(in))/2 + 1
	out := make([]complex128, n)
	copy(out[before:], in)

	return out, nil
}

// roll circularly shifts in by k positions; k may be negative.
func roll(in []complex128, k int) []complex128 {
	n := len(in)
	if n == 0 {
		return nil
	}

	k = ((k % n) + n) % n
	out := make([]complex128, n)
	for i, v := range in {
		out[(i+k)%n] = v
	}

	return out
}
