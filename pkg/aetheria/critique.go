package aetheria

import (
	"fmt"
	"math"
	"strings"
)

// Tuning thresholds for the critique engine, in the 0-255 intensity domain.
const (
	exposureLow    = 100.0
	exposureHigh   = 180.0
	exposureIdeal  = 128.0
	contrastFloor  = 40.0
	noiseFloor     = 10.0
	sharpnessFloor = 200.0
)

// LightingSuggestions derives actionable lighting recommendations from the
// measured statistics.
func LightingSuggestions(stats ImageStatistics) []LightingSuggestion {
	var out []LightingSuggestion

	if stats.ExposureMean < exposureLow {
		out = append(out, LightingSuggestion{
			Type:       "Exposure",
			Suggestion: "Increase global exposure or add fill lights.",
			Action:     "Adjust Exposure +0.5EV",
		})
	} else if stats.ExposureMean > exposureHigh {
		out = append(out, LightingSuggestion{
			Type:       "Exposure",
			Suggestion: "Reduce exposure to prevent blown-out highlights.",
			Action:     "Adjust Exposure -0.5EV",
		})
	}

	if stats.ContrastStd < contrastFloor {
		out = append(out, LightingSuggestion{
			Type:       "Contrast",
			Suggestion: "Lighting is too flat. Add directional light.",
			Action:     "Increase Contrast",
		})
	}

	out = append(out, LightingSuggestion{
		Type:       "HDRI",
		Suggestion: "Use a 'Golden Hour' HDRI for warmer tones.",
		Action:     "Set HDRI: Golden Hour",
	})
	return out
}

// RealismScore grades the render in [0, 100] from its statistics. The rubric
// penalizes exposure drift from the midtone, flat contrast, visible noise and
// soft focus.
func RealismScore(stats ImageStatistics) int {
	score := 100.0

	score -= math.Abs(stats.ExposureMean-exposureIdeal) * 0.25
	if stats.ContrastStd < contrastFloor {
		score -= (contrastFloor - stats.ContrastStd) * 0.5
	}
	if stats.NoiseLevel > noiseFloor {
		score -= (stats.NoiseLevel - noiseFloor) * 1.0
	}
	if stats.SharpnessVariance < sharpnessFloor {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

// BuildCritique assembles a short critique paragraph from the statistics.
func BuildCritique(stats ImageStatistics) string {
	var parts []string

	switch {
	case stats.ExposureMean < exposureLow:
		parts = append(parts, "The render is underexposed and shadow detail is being lost.")
	case stats.ExposureMean > exposureHigh:
		parts = append(parts, "The render is overexposed and highlights are clipping.")
	default:
		parts = append(parts, "Exposure sits comfortably in the midtones.")
	}

	if stats.ContrastStd < contrastFloor {
		parts = append(parts, "The lighting feels flat; a stronger key light would add depth.")
	}
	if stats.NoiseLevel > noiseFloor*1.5 {
		parts = append(parts, "Noise is visible in smooth areas; raise the sample count or denoise.")
	}
	if stats.SharpnessVariance < sharpnessFloor {
		parts = append(parts, "Surfaces read too smooth; higher-roughness maps and bump detail would improve realism.")
	}
	if stats.SaturationPct < 15 {
		parts = append(parts, "Colors are muted; consider richer material albedos.")
	} else if stats.SaturationPct > 60 {
		parts = append(parts, "Saturation is pushed hard; dial the albedos back for realism.")
	}

	return strings.Join(parts, " ")
}

// Differences compares render statistics against a reference image and
// reports the notable deltas as human-readable sentences.
func Differences(render, reference ImageStatistics) []string {
	var out []string

	if d := render.ExposureMean - reference.ExposureMean; math.Abs(d) > 10 {
		direction := "brighter"
		if d < 0 {
			direction = "darker"
		}
		out = append(out, fmt.Sprintf("Render is noticeably %s than the reference (exposure delta %.1f).", direction, d))
	}
	if d := render.ContrastStd - reference.ContrastStd; d < -8 {
		out = append(out, fmt.Sprintf("Render lacks the contrast depth of the reference (delta %.1f).", d))
	}
	if d := render.WhiteBalanceShift - reference.WhiteBalanceShift; math.Abs(d) > 10 {
		cast := "cooler"
		if d < 0 {
			cast = "warmer"
		}
		out = append(out, fmt.Sprintf("Render is %s than the reference; adjust white balance.", cast))
	}
	if render.SharpnessVariance < reference.SharpnessVariance*0.5 {
		out = append(out, "Render is softer than the reference; textures may be too smooth or resolution too low.")
	}
	return out
}
