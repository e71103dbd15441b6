//go:build js && wasm

package main

import (
	"syscall/js"

	"aetheria/pkg/aetheria"
)

func main() {
	js.Global().Set("analyzeRender", js.FuncOf(analyzeRender))
	select {} // block forever
}

// analyzeRender(renderBytes, options) -> result object.
// options: { reference: Uint8Array, description: string, colors: number }
func analyzeRender(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("usage: analyzeRender(renderBytes, options)")
	}

	renderBytes := copyBytes(args[0])

	var referenceBytes []byte
	var externalText string
	colors := 0
	if len(args) >= 2 && args[1].Type() == js.TypeObject {
		opts := args[1]
		if ref := opts.Get("reference"); ref.Type() == js.TypeObject {
			referenceBytes = copyBytes(ref)
		}
		if desc := opts.Get("description"); desc.Type() == js.TypeString {
			externalText = desc.String()
		}
		if k := opts.Get("colors"); k.Type() == js.TypeNumber {
			colors = k.Int()
		}
	}

	analyzer := aetheria.NewAnalyzer()
	if colors > 0 {
		analyzer.Palette.Colors = colors
	}
	return resultObject(analyzer.AnalyzeRender(renderBytes, referenceBytes, externalText))
}

// resultObject mirrors the JSON wire shape of AnalysisResult so the wasm and
// HTTP surfaces stay interchangeable.
func resultObject(result *aetheria.AnalysisResult) map[string]interface{} {
	obj := map[string]interface{}{
		"analysis":             statsObject(result.Render),
		"palette":              stringArray(result.Palette),
		"render_textures":      materialsArray(result.Materials),
		"critique":             result.Critique,
		"score":                result.Score,
		"suggestions":          stringArray(result.Suggestions),
		"lighting_suggestions": lightingArray(result.Lighting),
	}
	if result.Reference != nil {
		obj["analysis_ref"] = statsObject(*result.Reference)
	}
	if len(result.ReferencePalette) > 0 {
		obj["palette_ref"] = stringArray(result.ReferencePalette)
	}
	if len(result.Differences) > 0 {
		obj["differences"] = stringArray(result.Differences)
	}
	return obj
}

func copyBytes(v js.Value) []byte {
	out := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(out, v)
	return out
}

func statsObject(s aetheria.ImageStatistics) map[string]interface{} {
	return map[string]interface{}{
		"exposure_mean":           s.ExposureMean,
		"contrast_std":            s.ContrastStd,
		"noise_level":             s.NoiseLevel,
		"saturation_pct":          s.SaturationPct,
		"sharpness_laplacian_var": s.SharpnessVariance,
		"wb_shift_blue_minus_red": s.WhiteBalanceShift,
	}
}

func stringArray(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func lightingArray(suggestions []aetheria.LightingSuggestion) []interface{} {
	out := make([]interface{}, len(suggestions))
	for i, ls := range suggestions {
		out[i] = map[string]interface{}{
			"type":       ls.Type,
			"suggestion": ls.Suggestion,
			"action":     ls.Action,
		}
	}
	return out
}

func materialsArray(materials []aetheria.MaterialObservation) []interface{} {
	out := make([]interface{}, len(materials))
	for i, m := range materials {
		obj := map[string]interface{}{
			"category": m.Category,
			"name":     m.Name,
			"hex":      m.Hex,
			"x":        m.X,
			"y":        m.Y,
		}
		if m.Texture != nil {
			obj["texture_url"] = m.Texture.TextureURL
			obj["suggestion"] = m.Texture.Suggestion
			obj["suggestion_url"] = m.Texture.SuggestionURL
			obj["link"] = m.Texture.Link
		}
		out[i] = obj
	}
	return out
}

func errorResult(msg string) map[string]interface{} {
	return map[string]interface{}{"error": msg}
}
