package aetheria

import (
	"bytes"
	"fmt"
	"image"
)

// Analyzer runs the full render-analysis pipeline. The zero-cost default
// wires the process-wide catalog and the default parameters; all methods are
// safe for concurrent use because the catalog is immutable and everything
// else is request-scoped.
type Analyzer struct {
	Catalog *Catalog
	Match   *MatchParams
	Palette *PaletteParams
}

// NewAnalyzer creates an Analyzer with default parameters.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Catalog: DefaultCatalog(),
		Match:   NewMatchParams(),
		Palette: NewPaletteParams(),
	}
}

// AnalyzeRender produces a full AnalysisResult for a render image, an
// optional reference image, and an optional external description payload.
// Every input may be malformed; the result is always usable.
func (a *Analyzer) AnalyzeRender(render, reference []byte, externalText string) *AnalysisResult {
	stats := ExtractStatistics(render)
	palette := ExtractPaletteWithParams(render, a.Palette)

	result := &AnalysisResult{
		Render:   stats,
		Palette:  palette,
		Critique: BuildCritique(stats),
		Score:    RealismScore(stats),
		Lighting: LightingSuggestions(stats),
	}

	if externalText != "" {
		desc := NormalizeExternalDescription(externalText)
		if len(desc.Materials) > 0 {
			result.Materials = a.materialsFromExternal(desc.Materials)
		}
		if desc.Critique != "" {
			result.Critique = desc.Critique
		}
		if desc.Score != nil {
			result.Score = clampScore(*desc.Score)
		}
		if len(desc.Suggestions) > 0 {
			result.Suggestions = desc.Suggestions
		}
	}

	// Fall back to the palette-matcher path when no usable external
	// description was supplied.
	if result.Materials == nil {
		width, height := imageDims(render)
		result.Materials = a.Catalog.GenerateSuggestions(palette, width, height, a.Match)
	}
	if result.Suggestions == nil {
		result.Suggestions = improvementSuggestions(result.Lighting, result.Materials)
	}

	if len(reference) > 0 {
		refStats := ExtractStatistics(reference)
		result.Reference = &refStats
		result.ReferencePalette = ExtractPaletteWithParams(reference, a.Palette)
		result.Differences = Differences(stats, refStats)
	}
	return result
}

func (a *Analyzer) materialsFromExternal(materials []ExternalMaterial) []MaterialObservation {
	out := make([]MaterialObservation, 0, len(materials))
	for _, m := range materials {
		key := CategoryForType(m.Type)
		obs := MaterialObservation{
			Category: key,
			Name:     m.Name,
			Hex:      m.Color,
			X:        m.X,
			Y:        m.Y,
		}
		if cat, ok := a.Catalog.ByKey(key); ok && len(cat.Textures) > 0 {
			tex := cat.Textures[0]
			obs.Texture = &tex
		}
		out = append(out, obs)
	}
	return out
}

func improvementSuggestions(lighting []LightingSuggestion, materials []MaterialObservation) []string {
	out := make([]string, 0, len(lighting)+len(materials))
	for _, ls := range lighting {
		out = append(out, ls.Suggestion)
	}
	seen := make(map[string]bool)
	for _, m := range materials {
		if m.Texture == nil || seen[m.Texture.Suggestion] {
			continue
		}
		seen[m.Texture.Suggestion] = true
		out = append(out, fmt.Sprintf("Swap %s for %s.", m.Texture.Name, m.Texture.Suggestion))
	}
	return out
}

// imageDims reads just the image header for dimensions, defaulting to
// 1000x1000 when the header cannot be parsed.
func imageDims(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 1000, 1000
	}
	return cfg.Width, cfg.Height
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
