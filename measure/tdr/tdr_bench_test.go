package tdr

import (
	"testing"

	"github.com/cwbudde/algo-tdr/internal/testutil"
)

func benchSamples(n int) []Sample {
	return sweepFrom(testutil.FreqAxis(n, 1e6), testutil.DelaySweep(n, 1e6, 40e-9, 0.8))
}

func BenchmarkComputeImpedance101(b *testing.B) {
	samples := benchSamples(101)
	cfg := Config{
		Format:         FormatImpedanceLowpass,
		Window:         WindowHann,
		VelocityFactor: 0.66,
		FFTPoints:      16384,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compute(samples, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeReflectionBandpass101(b *testing.B) {
	samples := benchSamples(101)
	cfg := Config{
		Format:         FormatReflectionBandpass,
		Window:         WindowKaiserNormal,
		VelocityFactor: 0.66,
		FFTPoints:      16384,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compute(samples, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
