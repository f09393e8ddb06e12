package tdr

import (
	"fmt"
	"math"
	"sync/atomic"
)

const metersPerFoot = 0.3048

// Result holds one complete TDR computation. Compute returns a fresh value
// on every call and never mutates previously returned results.
type Result struct {
	Format Format

	// TimeDomain is the impulse response at FFTPoints resolution. For
	// lowpass formats the real part is the physical response and the
	// imaginary part is retained for export; for the bandpass format only
	// the magnitude is known and the imaginary parts are zero.
	TimeDomain []complex128

	// StepResponse is the display curve selected by Format, aligned with
	// DistanceAxis. It may contain IEEE infinities or NaNs at full
	// reflection; consumers render those as off-scale.
	StepResponse []float64

	// DistanceAxis is the round-trip distance in meters for each
	// time-domain sample.
	DistanceAxis []float64

	// CableLength is the estimated one-way cable length in meters,
	// rounded to millimeter precision.
	CableLength float64
}

// Feet returns the imperial breakdown of the cable length: whole feet and
// remaining inches rounded to one decimal.
func (r *Result) Feet() (feet int, inches float64) {
	f := math.Floor(r.CableLength / metersPerFoot)
	inches = math.Round(((r.CableLength/metersPerFoot)-f)*12*10) / 10
	return int(f), inches
}

// String formats the length estimate as "<m>m (<ft>ft <in>in)".
func (r *Result) String() string {
	feet, inches := r.Feet()
	return fmt.Sprintf("%.3fm (%dft %.1fin)", r.CableLength, feet, inches)
}

// Summary formats the length estimate as "<m>m".
func (r *Result) Summary() string {
	return fmt.Sprintf("%.3fm", r.CableLength)
}

// Published hands results from a recomputing writer to concurrent readers.
// Readers observe either the previous complete result or the next one,
// never a mix; a zero Published starts empty.
type Published struct {
	ptr atomic.Pointer[Result]
}

// Store publishes r, replacing any previous result.
func (p *Published) Store(r *Result) {
	p.ptr.Store(r)
}

// Load returns the most recently published result, or nil if none has been
// published yet.
func (p *Published) Load() *Result {
	return p.ptr.Load()
}
