// Package tdr derives time-domain reflectometry results from
// frequency-domain S11 reflection sweeps.
//
// A sweep of complex reflection coefficients over ascending frequencies is
// windowed, mirrored (lowpass formats) and inverse-transformed into a
// time-domain impulse response. Lowpass formats additionally derive a step
// response by convolving the impulse response with a unit step, from which
// the impedance, reflection-coefficient, S11 and VSWR profiles along the
// cable follow. The dominant impulse-response peak, the configured velocity
// factor and the speed of light yield an estimated one-way cable length.
//
// The whole pipeline is pure: [Compute] reads its inputs, returns a fresh
// [Result] and never retains references. Hosts that recompute on every
// sweep can hand results to concurrent readers through [Published].
package tdr
