//go:build purego || js

package aetheria

import "testing"

func TestReflectIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		idx, size, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 1},
		{-2, 5, 2},
		{5, 5, 3},
		{6, 5, 2},
		{0, 2, 0},
		{2, 2, 0},
		{-1, 2, 1},
	}
	for _, tt := range tests {
		if got := reflectIndex(tt.idx, tt.size); got != tt.want {
			t.Fatalf("reflectIndex(%d, %d) = %d, want %d", tt.idx, tt.size, got, tt.want)
		}
	}
}

func TestReflectIndexSingleElementAxis(t *testing.T) {
	t.Parallel()

	// Every index must collapse to 0 on a one-element axis; anything else
	// would oscillate without terminating.
	for _, idx := range []int{-3, -1, 0, 1, 2, 7} {
		if got := reflectIndex(idx, 1); got != 0 {
			t.Fatalf("reflectIndex(%d, 1) = %d, want 0", idx, got)
		}
	}
}

func TestConvolutionOnSinglePixelMat(t *testing.T) {
	t.Parallel()

	src := NewMatWithSize(1, 1)
	defer src.Close()
	src.DataFloat32()[0] = 42

	blurred := NewMat()
	defer blurred.Close()
	convolveGaussian(&src, &blurred, noiseBlurKernelSize)
	if got := blurred.DataFloat32()[0]; got < 41.9 || got > 42.1 {
		t.Fatalf("blur of a single pixel = %f, want ~42", got)
	}

	lap := NewMat()
	defer lap.Close()
	laplacian(src, &lap)
	if got := lap.DataFloat32()[0]; got != 0 {
		t.Fatalf("laplacian of a single pixel = %f, want 0", got)
	}
}

func TestConvolutionOnSingleRowMat(t *testing.T) {
	t.Parallel()

	src := NewMatWithSize(1, 8)
	defer src.Close()
	for i, data := 0, src.DataFloat32(); i < 8; i++ {
		data[i] = 100
	}

	blurred := NewMat()
	defer blurred.Close()
	convolveGaussian(&src, &blurred, noiseBlurKernelSize)
	for i, v := range blurred.DataFloat32() {
		if v < 99.9 || v > 100.1 {
			t.Fatalf("blur of a flat row changed value at %d: %f", i, v)
		}
	}
}
