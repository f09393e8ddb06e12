package tdr

// Format selects the transform path and the derived display quantity.
//
// Lowpass formats assume the sweep reaches down to DC, so the spectrum can
// be mirrored into a conjugate-symmetric double-sided form whose inverse
// transform is a real impulse response. The bandpass format keeps the
// one-sided spectrum and can only recover the impulse response magnitude.
type Format int

const (
	// FormatImpedanceLowpass displays |Z| along the cable.
	FormatImpedanceLowpass Format = iota
	// FormatS11Lowpass displays the step reflection coefficient in dB.
	FormatS11Lowpass
	// FormatVSWRLowpass displays the voltage standing wave ratio.
	FormatVSWRLowpass
	// FormatReflectionLowpass displays the corrected impulse response.
	FormatReflectionLowpass
	// FormatReflectionBandpass displays the corrected impulse response
	// magnitude without step convolution.
	FormatReflectionBandpass
)

// Lowpass reports whether the format mirrors the spectrum down to DC.
func (f Format) Lowpass() bool {
	return f.Valid() && f != FormatReflectionBandpass
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f >= FormatImpedanceLowpass && f <= FormatReflectionBandpass
}

func (f Format) String() string {
	switch f {
	case FormatImpedanceLowpass:
		return "|Z| (lowpass)"
	case FormatS11Lowpass:
		return "S11 (lowpass)"
	case FormatVSWRLowpass:
		return "VSWR (lowpass)"
	case FormatReflectionLowpass:
		return "Refl (lowpass)"
	case FormatReflectionBandpass:
		return "Refl (bandpass)"
	default:
		return "unknown"
	}
}
