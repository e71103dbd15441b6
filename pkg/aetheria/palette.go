package aetheria

import (
	"image"
	"log"
	"sort"

	"github.com/EdlinOrg/prominentcolor"
	xdraw "golang.org/x/image/draw"
)

// PaletteAlgorithm selects the quantizer used for palette extraction.
type PaletteAlgorithm string

const (
	// AlgorithmMedianCut splits the color space along the widest channel.
	AlgorithmMedianCut PaletteAlgorithm = "mediancut"

	// AlgorithmKMeans clusters colors with k-means (prominentcolor).
	AlgorithmKMeans PaletteAlgorithm = "kmeans"
)

// PaletteParams contains all parameters for palette extraction.
type PaletteParams struct {
	Colors     int // target palette size
	MaxSample  int // longest edge after downsampling
	MinBuckets int // floor for the quantizer bucket count
	Algorithm  PaletteAlgorithm
}

// NewPaletteParams creates a PaletteParams with default values.
func NewPaletteParams() *PaletteParams {
	return &PaletteParams{
		Colors:     6,
		MaxSample:  256,
		MinBuckets: 16,
		Algorithm:  AlgorithmMedianCut,
	}
}

var fallbackColors = []string{"#1e293b", "#94a3b8", "#38bdf8", "#f59e0b", "#10b981"}

// FallbackPalette returns the deterministic palette used when extraction
// cannot run, truncated to at most k entries.
func FallbackPalette(k int) []string {
	if k > len(fallbackColors) {
		k = len(fallbackColors)
	}
	if k < 0 {
		k = 0
	}
	out := make([]string, k)
	copy(out, fallbackColors[:k])
	return out
}

// ExtractPalette reduces raw image bytes to up to k dominant hex colors,
// most frequent first, with default parameters. It is total: any decode or
// quantization failure degrades to the fallback palette.
func ExtractPalette(data []byte, k int) []string {
	params := NewPaletteParams()
	params.Colors = k
	return ExtractPaletteWithParams(data, params)
}

// ExtractPaletteWithParams is ExtractPalette with explicit parameters.
func ExtractPaletteWithParams(data []byte, params *PaletteParams) []string {
	k := params.Colors
	if k <= 0 {
		return []string{}
	}

	img, err := decodeImage(data)
	if err != nil {
		log.Printf("aetheria: palette decode failed, using fallback palette: %v", err)
		return FallbackPalette(k)
	}

	small := downsample(img, params.MaxSample)
	buckets := 3 * k
	if buckets < params.MinBuckets {
		buckets = params.MinBuckets
	}

	var quantized []quantizedColor
	switch params.Algorithm {
	case AlgorithmKMeans:
		quantized, err = kmeansQuantize(small, buckets, params.MaxSample)
		if err != nil {
			log.Printf("aetheria: k-means quantization failed, using fallback palette: %v", err)
			return FallbackPalette(k)
		}
	default:
		quantized = medianCutQuantize(collectPixels(small), buckets)
	}
	if len(quantized) == 0 {
		log.Printf("aetheria: quantization produced no colors, using fallback palette")
		return FallbackPalette(k)
	}

	// Stable sort keeps first-seen order for equal frequencies.
	sort.SliceStable(quantized, func(i, j int) bool {
		return quantized[i].count > quantized[j].count
	})

	palette := make([]string, 0, k)
	seen := make(map[string]bool, k)
	for _, q := range quantized {
		hex := RGBToHex(q.color)
		if seen[hex] {
			continue
		}
		seen[hex] = true
		palette = append(palette, hex)
		if len(palette) == k {
			break
		}
	}
	return palette
}

// downsample scales the image so its longest edge is at most maxEdge,
// preserving aspect ratio. Images already small enough pass through.
func downsample(img image.Image, maxEdge int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	longest := w
	if h > longest {
		longest = h
	}
	scale := float64(maxEdge) / float64(longest)
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

func collectPixels(img image.Image) []RGB {
	bounds := img.Bounds()
	pixels := make([]RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	return pixels
}

type quantizedColor struct {
	color RGB
	count int
}

// medianCutQuantize reduces pixels to at most n representative colors by
// repeatedly splitting the box with the widest channel range at its median.
func medianCutQuantize(pixels []RGB, n int) []quantizedColor {
	if len(pixels) == 0 || n <= 0 {
		return nil
	}
	boxes := [][]RGB{pixels}
	for len(boxes) < n {
		widestIdx := -1
		widestRange := 0
		for i, box := range boxes {
			if len(box) <= 1 {
				continue
			}
			r := boxRange(box)
			if r > widestRange {
				widestRange = r
				widestIdx = i
			}
		}
		// All remaining boxes are uniform or single-pixel.
		if widestIdx < 0 {
			break
		}
		left, right := splitAtMedian(boxes[widestIdx])
		boxes[widestIdx] = left
		boxes = append(boxes, right)
	}

	out := make([]quantizedColor, 0, len(boxes))
	for _, box := range boxes {
		if len(box) == 0 {
			continue
		}
		out = append(out, quantizedColor{color: averageColor(box), count: len(box)})
	}
	return out
}

func channelRange(pixels []RGB, ch int) int {
	minV, maxV := 255, 0
	for _, p := range pixels {
		var v int
		switch ch {
		case 0:
			v = int(p.R)
		case 1:
			v = int(p.G)
		default:
			v = int(p.B)
		}
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return maxV - minV
}

func boxRange(pixels []RGB) int {
	r := channelRange(pixels, 0)
	if g := channelRange(pixels, 1); g > r {
		r = g
	}
	if b := channelRange(pixels, 2); b > r {
		r = b
	}
	return r
}

func splitAtMedian(pixels []RGB) ([]RGB, []RGB) {
	ranges := [3]int{channelRange(pixels, 0), channelRange(pixels, 1), channelRange(pixels, 2)}
	dominant := 0
	if ranges[1] > ranges[dominant] {
		dominant = 1
	}
	if ranges[2] > ranges[dominant] {
		dominant = 2
	}

	sorted := make([]RGB, len(pixels))
	copy(sorted, pixels)
	sort.Slice(sorted, func(i, j int) bool {
		switch dominant {
		case 0:
			return sorted[i].R < sorted[j].R
		case 1:
			return sorted[i].G < sorted[j].G
		default:
			return sorted[i].B < sorted[j].B
		}
	})

	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:]
}

func averageColor(pixels []RGB) RGB {
	var rSum, gSum, bSum int64
	for _, p := range pixels {
		rSum += int64(p.R)
		gSum += int64(p.G)
		bSum += int64(p.B)
	}
	n := int64(len(pixels))
	return RGB{
		R: uint8((rSum + n/2) / n),
		G: uint8((gSum + n/2) / n),
		B: uint8((bSum + n/2) / n),
	}
}

func kmeansQuantize(img image.Image, n, resizeSize int) ([]quantizedColor, error) {
	items, err := prominentcolor.KmeansWithAll(n, img, prominentcolor.ArgumentNoCropping,
		uint(resizeSize), nil)
	if err != nil {
		return nil, err
	}
	out := make([]quantizedColor, 0, len(items))
	for _, item := range items {
		out = append(out, quantizedColor{
			color: RGB{uint8(item.Color.R), uint8(item.Color.G), uint8(item.Color.B)},
			count: item.Cnt,
		})
	}
	return out, nil
}
