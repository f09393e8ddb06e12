package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 1, 0, 0.5}, // swapped bounds
	}

	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
			t.Fatalf("Clamp(%v, %v, %v)=%v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 0) {
		t.Fatal("expected nearly equal with default epsilon")
	}

	if NearlyEqual(1, 1.1, 1e-6) {
		t.Fatal("expected not nearly equal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zeros must compare equal")
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1)=%v, want 0", got)
	}

	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0)=%v, want -Inf", got)
	}

	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearToDB(-1)=%v, want NaN", got)
	}

	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10)=%v, want 20", got)
	}
}

func TestDBToLinearRoundTrip(t *testing.T) {
	for _, db := range []float64{-40, -6, 0, 6, 40} {
		back := LinearToDB(DBToLinear(db))
		if math.Abs(back-db) > 1e-9 {
			t.Fatalf("round trip %v -> %v", db, back)
		}
	}
}
