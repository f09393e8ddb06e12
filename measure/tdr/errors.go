package tdr

import "errors"

// Errors returned by Compute. All are recoverable: the caller keeps its
// previously published result and retries on the next sweep or
// configuration change.
var (
	ErrInsufficientData = errors.New("tdr: need at least 2 sweep samples")
	ErrZeroSpan         = errors.New("tdr: cannot compute cable length at zero span")
	ErrInvalidVelocity  = errors.New("tdr: velocity factor must be in (0, 1]")
	ErrInvalidFFTPoints = errors.New("tdr: fft points must be a power of two exceeding the spectrum length")
	ErrUnknownFormat    = errors.New("tdr: unknown display format")
	ErrUnknownWindow    = errors.New("tdr: unknown window")
)
