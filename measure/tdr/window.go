package tdr

import (
	"github.com/cwbudde/algo-tdr/dsp/window"
)

// Window identifies an entry of the fixed TDR window catalog.
//
// Each entry binds a kernel to the amplitude correction factor that
// recovers true units after windowing, so callers cannot pair a kernel
// with the wrong correction.
type Window int

const (
	WindowHann Window = iota
	WindowBlackman
	// Kaiser variants, ordered by increasing sidelobe suppression.
	WindowKaiserMinimal // beta 0
	WindowKaiserNormal  // beta 6
	WindowKaiserStrong  // beta 13
	WindowKaiserMaximal // beta 100
)

type windowSpec struct {
	name    string
	typ     window.Type
	beta    float64
	hasBeta bool
}

var windowCatalog = [...]windowSpec{
	WindowHann:          {name: "Hann", typ: window.TypeHann},
	WindowBlackman:      {name: "Blackman", typ: window.TypeBlackman},
	WindowKaiserMinimal: {name: "Minimal (Kaiser, beta=0)", typ: window.TypeKaiser, beta: 0, hasBeta: true},
	WindowKaiserNormal:  {name: "Normal (Kaiser, beta=6)", typ: window.TypeKaiser, beta: 6, hasBeta: true},
	WindowKaiserStrong:  {name: "Strong (Kaiser, beta=13)", typ: window.TypeKaiser, beta: 13, hasBeta: true},
	WindowKaiserMaximal: {name: "Maximal (Kaiser, beta=100)", typ: window.TypeKaiser, beta: 100, hasBeta: true},
}

// Windows returns the catalog entries in display order.
func Windows() []Window {
	out := make([]Window, len(windowCatalog))
	for i := range out {
		out[i] = Window(i)
	}
	return out
}

// Valid reports whether w is a catalog entry.
func (w Window) Valid() bool {
	return w >= 0 && int(w) < len(windowCatalog)
}

func (w Window) String() string {
	if !w.Valid() {
		return "unknown"
	}
	return windowCatalog[w].name
}

func (w Window) options() []window.Option {
	spec := windowCatalog[w]
	if !spec.hasBeta {
		return nil
	}
	return []window.Option{window.WithBeta(spec.beta)}
}

// apply multiplies buf in place by the window kernel at len(buf).
func (w Window) apply(buf []complex128) {
	window.ApplyComplex(windowCatalog[w].typ, buf, w.options()...)
}

// correction returns the amplitude correction factor at the given length.
func (w Window) correction(length int) float64 {
	return window.Correction(windowCatalog[w].typ, length, w.options()...)
}
