package tdr

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-tdr/dsp/conv"
	"github.com/cwbudde/algo-tdr/dsp/core"
	"github.com/cwbudde/algo-tdr/dsp/spectrum"
)

// Physical constants of the measurement.
const (
	// ReferenceImpedance is the system reference impedance in ohms.
	ReferenceImpedance = 50.0

	// SpeedOfLight is the vacuum speed of light in m/s.
	SpeedOfLight = 299792458.0

	// MinSamples is the smallest sweep that can be transformed.
	MinSamples = 2
)

// Sample is one point of an S11 sweep: the complex reflection coefficient
// measured at a frequency. Sweeps are ordered by ascending frequency.
type Sample struct {
	Freq  float64 // Hz
	Gamma complex128
}

// Config selects the display format, window, propagation velocity and
// inverse-transform resolution for a computation.
type Config struct {
	Format Format
	Window Window

	// VelocityFactor is the cable propagation velocity as a fraction of
	// the speed of light, in (0, 1].
	VelocityFactor float64

	// FFTPoints is the time-domain resolution, a power of two larger
	// than the (mirrored) spectrum.
	FFTPoints int
}

func (c Config) validate(sampleCount int) error {
	if !c.Format.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(c.Format))
	}

	if !c.Window.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownWindow, int(c.Window))
	}

	if c.VelocityFactor <= 0 || c.VelocityFactor > 1 || math.IsNaN(c.VelocityFactor) {
		return fmt.Errorf("%w: %v", ErrInvalidVelocity, c.VelocityFactor)
	}

	spectrumLen := sampleCount
	if c.Format.Lowpass() {
		spectrumLen = 2*sampleCount - 1
	}

	if c.FFTPoints <= spectrumLen || !isPowerOf2(c.FFTPoints) {
		return fmt.Errorf("%w: %d points for %d spectrum bins", ErrInvalidFFTPoints, c.FFTPoints, spectrumLen)
	}

	return nil
}

// Compute runs the TDR pipeline on one sweep snapshot.
//
// On any validation failure the returned error identifies the cause and no
// result is produced; callers keep whatever they published last. Numeric
// edge cases inside the pipeline (division by zero at full reflection, log
// of zero reflection) are not errors and propagate as IEEE infinities or
// NaNs in the output curves.
func Compute(samples []Sample, cfg Config) (*Result, error) {
	if len(samples) < MinSamples {
		return nil, ErrInsufficientData
	}

	freqStep := samples[1].Freq - samples[0].Freq
	if freqStep == 0 {
		return nil, ErrZeroSpan
	}

	if err := cfg.validate(len(samples)); err != nil {
		return nil, err
	}

	gamma := make([]complex128, len(samples))
	for i, s := range samples {
		gamma[i] = s.Gamma
	}

	windowed := prepareSpectrum(gamma, cfg)

	var (
		td    []complex128
		curve []float64
		err   error
	)

	corr := cfg.Window.correction(len(samples))

	if cfg.Format.Lowpass() {
		td, err = lowpassImpulse(windowed, cfg.FFTPoints)
		if err != nil {
			return nil, err
		}

		curve, err = lowpassCurve(td, cfg.Format, corr)
		if err != nil {
			return nil, err
		}
	} else {
		td, err = bandpassImpulse(windowed, cfg.FFTPoints)
		if err != nil {
			return nil, err
		}

		curve = make([]float64, len(td))
		for i, v := range td {
			curve[i] = real(v) * float64(cfg.FFTPoints) / corr
		}
	}

	// Peak search always runs on the impulse response magnitude, never on
	// the derived display curve. Any maximum is accepted, however shallow.
	mag := spectrum.Magnitude(td)
	peak := spectrum.PeakIndex(mag)

	distance := distanceAxis(cfg.FFTPoints, freqStep, cfg.VelocityFactor)
	length := roundTo(distance[peak]/2, 3)

	return &Result{
		Format:       cfg.Format,
		TimeDomain:   td,
		StepResponse: curve,
		DistanceAxis: distance,
		CableLength:  length,
	}, nil
}

// prepareSpectrum mirrors (lowpass) and windows the raw reflection samples.
func prepareSpectrum(gamma []complex128, cfg Config) []complex128 {
	var s []complex128
	if cfg.Format.Lowpass() {
		s = spectrum.FFTShift(spectrum.MirrorHermitian(gamma))
	} else {
		s = append([]complex128(nil), gamma...)
	}

	cfg.Window.apply(s)
	return s
}

// lowpassImpulse zero-pads the centered spectrum to the requested
// resolution, undoes the centering shift and inverse-transforms. The real
// part carries the physical impulse response; the imaginary part is kept
// for export but stays numerically near zero.
func lowpassImpulse(windowed []complex128, points int) ([]complex128, error) {
	padded, err := spectrum.PadCentered(windowed, points)
	if err != nil {
		return nil, fmt.Errorf("tdr: %w", err)
	}

	td, err := inverseTransform(spectrum.IFFTShift(padded))
	if err != nil {
		return nil, err
	}

	return td, nil
}

// bandpassImpulse inverse-transforms the one-sided windowed spectrum at the
// requested resolution and keeps only the magnitude: without the
// low-frequency half of the spectrum the phase of the impulse response is
// not recoverable.
func bandpassImpulse(windowed []complex128, points int) ([]complex128, error) {
	padded := make([]complex128, points)
	copy(padded, windowed)

	td, err := inverseTransform(padded)
	if err != nil {
		return nil, err
	}

	for i, v := range td {
		td[i] = complex(cmplx.Abs(v), 0)
	}

	return td, nil
}

func inverseTransform(in []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("tdr: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, len(in))
	if err := plan.Inverse(out, in); err != nil {
		return nil, fmt.Errorf("tdr: inverse FFT failed: %w", err)
	}

	return out, nil
}

// lowpassCurve derives the display curve for a lowpass format from the
// impulse response.
func lowpassCurve(td []complex128, format Format, corr float64) ([]float64, error) {
	n := len(td)

	if format == FormatReflectionLowpass {
		out := make([]float64, n)
		for i := range out {
			out[i] = real(td[i]) * float64(n) / corr
		}
		return out, nil
	}

	combined, err := stepResponse(td)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		z := stepImpedance(combined[i])

		switch format {
		case FormatImpedanceLowpass:
			out[i] = cmplx.Abs(z)
		case FormatS11Lowpass:
			out[i] = core.LinearToDB(reflectionCoefficient(z))
		case FormatVSWRLowpass:
			rho := reflectionCoefficient(z)
			out[i] = math.Abs((1 + rho) / (1 - rho))
		}
	}

	return out, nil
}

// stepResponse convolves the impulse response with a unit step, forward and
// time-reversed, and sums both full convolutions. The sum cancels the
// artifact that skews the impedance reading at zero cable length.
func stepResponse(td []complex128) ([]complex128, error) {
	n := len(td)

	step := make([]complex128, n)
	for i := range step {
		step[i] = 1
	}

	forward, err := conv.ConvolveComplex(td, step)
	if err != nil {
		return nil, fmt.Errorf("tdr: step convolution failed: %w", err)
	}

	reversed := make([]complex128, n)
	for i, v := range td {
		reversed[n-1-i] = v
	}

	backward, err := conv.ConvolveComplex(reversed, step)
	if err != nil {
		return nil, fmt.Errorf("tdr: step convolution failed: %w", err)
	}

	for i := range forward {
		forward[i] += backward[i]
	}

	return forward, nil
}

// stepImpedance converts a step response value into a complex impedance
// against the reference. Full reflection drives the denominator to zero;
// the resulting infinities are legitimate and flow through unchanged.
func stepImpedance(s complex128) complex128 {
	return ReferenceImpedance * (1 + s) / (1 - s)
}

// reflectionCoefficient converts an impedance back into the magnitude of
// the reflection coefficient against the reference impedance.
func reflectionCoefficient(z complex128) float64 {
	return cmplx.Abs((z - ReferenceImpedance) / (z + ReferenceImpedance))
}

// distanceAxis maps time-domain sample indices to round-trip distances in
// meters. The time spacing is the reciprocal of freqStep * points.
func distanceAxis(points int, freqStep, velocity float64) []float64 {
	samplePeriod := 1 / (freqStep * float64(points))

	out := make([]float64, points)
	for i := range out {
		out[i] = float64(i) * samplePeriod * velocity * SpeedOfLight
	}

	return out
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
