package aetheria

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HexToRGB parses a 6-digit hex color, with or without a leading '#'.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("hex color must have 6 digits, got %q", hex)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("invalid hex color %q", hex)
		}
		channels[i] = hi<<4 | lo
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// RGBToHex formats a color as lowercase "#rrggbb".
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorDistance computes the redmean-weighted Euclidean distance between two
// hex colors. The red and blue weights shift with the mean red level, which
// tracks perceptual difference better than a plain Euclidean distance.
// Unparseable inputs are treated as neutral gray, keeping the function total.
func ColorDistance(a, b string) float64 {
	ca := rgbOrGray(a)
	cb := rgbOrGray(b)

	rMean := (float64(ca.R) + float64(cb.R)) / 2
	dr := float64(ca.R) - float64(cb.R)
	dg := float64(ca.G) - float64(cb.G)
	db := float64(ca.B) - float64(cb.B)

	wr := 2 + rMean/256
	wg := 4.0
	wb := 2 + (255-rMean)/256

	return math.Sqrt(wr*dr*dr + wg*dg*dg + wb*db*db)
}

func rgbOrGray(hex string) RGB {
	c, err := HexToRGB(hex)
	if err != nil {
		return RGB{R: 0x80, G: 0x80, B: 0x80}
	}
	return c
}

// saturation returns the HSV saturation of an 8-bit RGB triple in [0, 1].
func saturation(r, g, b uint8) float64 {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	_, s, _ := c.Hsv()
	return s
}
