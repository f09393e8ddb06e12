package conv

import (
	"math/rand"
	"testing"
)

func randomComplex(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

func BenchmarkDirectComplex1k(b *testing.B) {
	a := randomComplex(1024, 1)
	k := randomComplex(1024, 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DirectComplex(a, k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFFTComplex1k(b *testing.B) {
	a := randomComplex(1024, 1)
	k := randomComplex(1024, 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FFTComplex(a, k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFFTComplex16k(b *testing.B) {
	a := randomComplex(16384, 3)
	k := randomComplex(16384, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FFTComplex(a, k); err != nil {
			b.Fatal(err)
		}
	}
}
