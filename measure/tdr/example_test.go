package tdr_test

import (
	"fmt"

	"github.com/cwbudde/algo-tdr/measure/tdr"
)

func ExampleCompute() {
	// A flat zero-reflection sweep: a perfectly matched load.
	samples := []tdr.Sample{
		{Freq: 1e6, Gamma: 0},
		{Freq: 2e6, Gamma: 0},
		{Freq: 3e6, Gamma: 0},
	}

	cfg := tdr.Config{
		Format:         tdr.FormatImpedanceLowpass,
		Window:         tdr.WindowHann,
		VelocityFactor: 0.66,
		FFTPoints:      64,
	}

	result, err := tdr.Compute(samples, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(result.Summary())
	fmt.Printf("Z at origin: %.0f ohm\n", result.StepResponse[0])
	// Output:
	// 0.000m
	// Z at origin: 50 ohm
}

func ExampleCableByName() {
	cable, ok := tdr.CableByName(tdr.Cables(), "RG-174 PE")
	if !ok {
		fmt.Println("not found")
		return
	}

	fmt.Printf("%.2f\n", cable.VelocityFactor)
	// Output:
	// 0.66
}

func ExampleFormat_String() {
	fmt.Println(tdr.FormatImpedanceLowpass)
	fmt.Println(tdr.FormatReflectionBandpass)
	// Output:
	// |Z| (lowpass)
	// Refl (bandpass)
}
