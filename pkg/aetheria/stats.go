package aetheria

import (
	"image"
	"log"

	"gonum.org/v1/gonum/stat"
)

// NeutralStatistics is returned whenever the image cannot be decoded or
// processed. Statistics are advisory, so degrading beats failing.
var NeutralStatistics = ImageStatistics{
	ExposureMean:      128.0,
	ContrastStd:       50.0,
	NoiseLevel:        10.0,
	SaturationPct:     50.0,
	SharpnessVariance: 500.0,
	WhiteBalanceShift: 0.0,
}

const noiseBlurKernelSize = 5

// ExtractStatistics computes photometric statistics for raw image bytes.
// It is total: undecodable input yields NeutralStatistics.
func ExtractStatistics(data []byte) ImageStatistics {
	img, err := decodeImage(data)
	if err != nil {
		log.Printf("aetheria: statistics decode failed, using neutral defaults: %v", err)
		return NeutralStatistics
	}
	return statisticsOf(img)
}

func statisticsOf(img image.Image) ImageStatistics {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return NeutralStatistics
	}

	gray := NewMatWithSize(h, w)
	defer gray.Close()
	grayData := gray.DataFloat32()

	var redSum, blueSum, satSum float64
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			r8 := uint8(r >> 8)
			g8 := uint8(g >> 8)
			b8 := uint8(b >> 8)
			grayData[i] = float32(0.299*float64(r8) + 0.587*float64(g8) + 0.114*float64(b8))
			redSum += float64(r8)
			blueSum += float64(b8)
			satSum += saturation(r8, g8, b8)
			i++
		}
	}
	n := float64(w * h)

	gray64 := float64s(gray)
	exposure := stat.Mean(gray64, nil)
	contrast := stat.PopStdDev(gray64, nil)

	// Sharpness: variance of the discrete Laplacian response.
	lap := NewMat()
	defer lap.Close()
	laplacian(gray, &lap)
	sharpness := stat.PopVariance(float64s(lap), nil)

	// Noise: mean residual against a Gaussian-blurred copy. Edges contribute
	// too, but the residual tracks high-frequency noise well enough.
	blurred := NewMat()
	defer blurred.Close()
	convolveGaussian(&gray, &blurred, noiseBlurKernelSize)
	diff := NewMat()
	defer diff.Close()
	absDiff(gray, blurred, &diff)
	noise := stat.Mean(float64s(diff), nil)

	return ImageStatistics{
		ExposureMean:      exposure,
		ContrastStd:       contrast,
		NoiseLevel:        noise,
		SaturationPct:     satSum / n * 100,
		SharpnessVariance: sharpness,
		WhiteBalanceShift: blueSum/n - redSum/n,
	}
}

// convolveGaussian applies a separated Gaussian convolution.
func convolveGaussian(src, dst *Mat, kernelSize int) {
	if kernelSize < 3 || kernelSize%2 == 0 {
		panic("kernelSize must be a positive odd number >= 3")
	}
	sigma := 0.159758 * float64(kernelSize)
	kernel := getGaussianKernel1D(kernelSize, sigma)
	defer kernel.Close()
	sepFilter2DReflect(*src, dst, kernel, kernel)
}

func float64s(m Mat) []float64 {
	src := m.DataFloat32()
	n := m.Rows() * m.Cols()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(src[i])
	}
	return out
}
