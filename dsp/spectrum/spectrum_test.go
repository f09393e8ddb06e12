package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	in := []complex128{3 + 4i, 0, -1, 1i}
	got := Magnitude(in)

	want := []float64{5, 0, 1, 1}
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestPeakIndexFirstOccurrenceOnTies(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want int
	}{
		{"empty", nil, -1},
		{"single", []float64{0}, 0},
		{"interior", []float64{0, 1, 3, 2}, 2},
		{"ties pick first", []float64{1, 5, 2, 5, 5}, 1},
		{"all equal", []float64{2, 2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeakIndex(tt.in); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMirrorHermitian(t *testing.T) {
	in := []complex128{1, 2 + 1i, 3 - 2i}
	got := MirrorHermitian(in)

	want := []complex128{1, 2 + 1i, 3 - 2i, 3 + 2i, 2 - 1i}
	if len(got) != 2*len(in)-1 {
		t.Fatalf("length %d, want %d", len(got), 2*len(in)-1)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMirrorHermitianSingle(t *testing.T) {
	got := MirrorHermitian([]complex128{5 - 1i})
	if len(got) != 1 || got[0] != 5-1i {
		t.Fatalf("got %v", got)
	}
}

func TestFFTShiftOdd(t *testing.T) {
	in := []complex128{0, 1, 2, 3, 4}
	got := FFTShift(in)

	// Roll forward by 2: DC lands in the center.
	want := []complex128{3, 4, 0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFFTShiftEvenRoundTrip(t *testing.T) {
	in := []complex128{0, 1, 2, 3}

	shifted := FFTShift(in)
	want := []complex128{2, 3, 0, 1}
	for i := range want {
		if shifted[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, shifted[i], want[i])
		}
	}

	back := IFFTShift(shifted)
	for i := range in {
		if back[i] != in[i] {
			t.Fatalf("round trip index %d: got %v, want %v", i, back[i], in[i])
		}
	}
}

func TestIFFTShiftInvertsFFTShiftOdd(t *testing.T) {
	in := []complex128{1, 2, 3, 4, 5, 6, 7}

	back := IFFTShift(FFTShift(in))
	for i := range in {
		if back[i] != in[i] {
			t.Fatalf("index %d: got %v, want %v", i, back[i], in[i])
		}
	}
}

func TestPadCenteredKeepsCenterAligned(t *testing.T) {
	// One-sided spectrum of 2 bins mirrors to 3 bins with DC at index 0.
	mirrored := MirrorHermitian([]complex128{10, 20})
	centered := FFTShift(mirrored)

	// After centering the DC bin sits at index 1 of 3.
	if centered[1] != 10 {
		t.Fatalf("center bin %v, want 10", centered[1])
	}

	padded, err := PadCentered(centered, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(padded) != 8 {
		t.Fatalf("padded length %d, want 8", len(padded))
	}

	// Unshifting at the padded length must return DC to index 0.
	unshifted := IFFTShift(padded)
	if unshifted[0] != 10 {
		t.Fatalf("DC bin after unshift %v, want 10", unshifted[0])
	}
}

func TestPadCenteredRejectsShortTarget(t *testing.T) {
	in := make([]complex128, 8)

	if _, err := PadCentered(in, 8); err == nil {
		t.Fatal("expected error for target equal to input length")
	}

	if _, err := PadCentered(in, 4); err == nil {
		t.Fatal("expected error for target shorter than input")
	}
}
