// Package spectrum provides complex-spectrum utilities: magnitude
// extraction, Hermitian mirroring of one-sided spectra, FFT shift and
// unshift, and centered zero padding.
//
// The shift functions follow the discrete Fourier centering convention
// (circular roll by half the length), so a one-sided spectrum mirrored with
// [MirrorHermitian] and shifted with [FFTShift] has its zero-frequency bin
// in the center, ready for centered zero padding and an inverse transform.
package spectrum
