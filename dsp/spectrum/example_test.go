package spectrum

import "fmt"

func ExampleMirrorHermitian() {
	double := MirrorHermitian([]complex128{1, 2 + 1i})
	fmt.Println(double)
	// Output:
	// [(1+0i) (2+1i) (2-1i)]
}

func ExampleFFTShift() {
	centered := FFTShift([]complex128{0, 1, 2, 3})
	fmt.Println(centered)
	// Output:
	// [(2+0i) (3+0i) (0+0i) (1+0i)]
}
