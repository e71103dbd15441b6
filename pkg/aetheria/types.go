package aetheria

import "fmt"

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// ImageStatistics holds the photometric metrics computed for one image.
// All values are in the 0-255 intensity domain except SaturationPct (0-100).
type ImageStatistics struct {
	ExposureMean      float64 `json:"exposure_mean"`
	ContrastStd       float64 `json:"contrast_std"`
	NoiseLevel        float64 `json:"noise_level"`
	SaturationPct     float64 `json:"saturation_pct"`
	SharpnessVariance float64 `json:"sharpness_laplacian_var"`
	WhiteBalanceShift float64 `json:"wb_shift_blue_minus_red"`
}

func (s ImageStatistics) String() string {
	return fmt.Sprintf("{Exposure=%.1f, Contrast=%.1f, Noise=%.1f, Saturation=%.1f%%, Sharpness=%.0f, WBShift=%.1f}",
		s.ExposureMean, s.ContrastStd, s.NoiseLevel, s.SaturationPct, s.SharpnessVariance, s.WhiteBalanceShift)
}

// TextureSuggestion points at a reference texture and a suggested upgrade.
// URLs are opaque locators into the texture catalog.
type TextureSuggestion struct {
	Name          string `json:"name"`
	TextureURL    string `json:"texture_url"`
	Suggestion    string `json:"suggestion"`
	SuggestionURL string `json:"suggestion_url"`
	Link          string `json:"link"`
}

// MaterialCategory is one entry of the material knowledge base.
type MaterialCategory struct {
	Key      string
	Keywords []string
	Colors   []string
	Textures []TextureSuggestion
}

// MaterialObservation is the result of matching one color against the
// knowledge base. Texture is nil for categories without suggestions (sky).
type MaterialObservation struct {
	Category string             `json:"category"`
	Name     string             `json:"name"`
	Hex      string             `json:"hex"`
	X        int                `json:"x"`
	Y        int                `json:"y"`
	Texture  *TextureSuggestion `json:"texture,omitempty"`
}

// LightingSuggestion is an actionable lighting-setup recommendation.
type LightingSuggestion struct {
	Type       string `json:"type"`
	Suggestion string `json:"suggestion"`
	Action     string `json:"action"`
}

// AnalysisResult is the externally visible output of one pipeline run.
// It is constructed fresh per request and never persisted.
type AnalysisResult struct {
	Render           ImageStatistics      `json:"analysis"`
	Reference        *ImageStatistics     `json:"analysis_ref,omitempty"`
	Palette          []string             `json:"palette"`
	ReferencePalette []string             `json:"palette_ref,omitempty"`
	Materials        []MaterialObservation `json:"render_textures"`
	Critique         string               `json:"critique"`
	Score            int                  `json:"score"`
	Suggestions      []string             `json:"suggestions"`
	Lighting         []LightingSuggestion `json:"lighting_suggestions"`
	Differences      []string             `json:"differences,omitempty"`
}
