package aetheria

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ExternalMaterial is one material reported by the description service,
// coerced into a well-typed shape.
type ExternalMaterial struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// ExternalDescription is the normalized form of an external description
// payload. Score is passed through without clamping; clamping is the
// caller's concern. A nil Score means the payload carried none, which is
// distinct from an explicit zero.
type ExternalDescription struct {
	Materials   []ExternalMaterial `json:"materials"`
	Critique    string             `json:"critique"`
	Score       *int               `json:"score,omitempty"`
	Suggestions []string           `json:"suggestions"`
}

const (
	fallbackCritiquePrefix = "Automated critique unavailable. Raw description: "
	fallbackScore          = 50
	fallbackExcerptRunes   = 100
)

// NormalizeExternalDescription coerces an arbitrary description payload into
// an ExternalDescription. The payload is untrusted: a structured block is
// decoded when one can be located, anything else degrades to a minimal
// record. This function never fails.
func NormalizeExternalDescription(raw string) ExternalDescription {
	if desc, ok := parseStructured(raw); ok {
		return desc
	}
	return fallbackDescription(raw)
}

// parseStructured attempts a structured decode of the substring between the
// first '{' and the last '}' in the payload.
func parseStructured(raw string) (ExternalDescription, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ExternalDescription{}, false
	}

	var payload struct {
		Materials   []json.RawMessage `json:"materials"`
		Critique    string            `json:"critique"`
		Score       *float64          `json:"score"`
		Suggestions []string          `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return ExternalDescription{}, false
	}

	materials := make([]ExternalMaterial, 0, len(payload.Materials))
	for _, rawMat := range payload.Materials {
		var fields map[string]any
		if err := json.Unmarshal(rawMat, &fields); err != nil {
			continue // non-object entries are dropped, not errored
		}
		typ, ok := fields["type"].(string)
		if !ok {
			continue // type-less entries are dropped
		}
		m := ExternalMaterial{
			Name:  "Unknown Material",
			Type:  strings.ToLower(typ),
			X:     50,
			Y:     50,
			Color: "#808080",
		}
		if name, ok := fields["name"].(string); ok && name != "" {
			m.Name = name
		}
		if x, ok := coerceInt(fields["x"]); ok {
			m.X = x
		}
		if y, ok := coerceInt(fields["y"]); ok {
			m.Y = y
		}
		if color, ok := fields["color"].(string); ok && color != "" {
			m.Color = color
		}
		materials = append(materials, m)
	}

	suggestions := payload.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	var score *int
	if payload.Score != nil {
		s := int(*payload.Score)
		score = &s
	}
	return ExternalDescription{
		Materials:   materials,
		Critique:    payload.Critique,
		Score:       score,
		Suggestions: suggestions,
	}, true
}

func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

func fallbackDescription(raw string) ExternalDescription {
	excerpt := []rune(raw)
	if len(excerpt) > fallbackExcerptRunes {
		excerpt = excerpt[:fallbackExcerptRunes]
	}
	score := fallbackScore
	return ExternalDescription{
		Materials:   []ExternalMaterial{},
		Critique:    fallbackCritiquePrefix + string(excerpt),
		Score:       &score,
		Suggestions: []string{},
	}
}
