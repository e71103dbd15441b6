package aetheria

import "testing"

func TestMatchMaterialSkyBiasWinsAtTop(t *testing.T) {
	t.Parallel()

	// #87CEEB appears in both glass_blue and sky_blue. In the upper band the
	// sky bias must decide the tie even though glass_blue is declared first.
	obs := MatchMaterial("#87CEEB", 0.1)
	if obs.Category != "sky_blue" {
		t.Fatalf("top-of-frame sky color matched %q, want sky_blue", obs.Category)
	}
	if obs.Texture != nil {
		t.Fatalf("sky match should carry no texture, got %+v", obs.Texture)
	}
	if obs.Name != "Sky Blue" {
		t.Fatalf("sky match name = %q, want %q", obs.Name, "Sky Blue")
	}
}

func TestMatchMaterialMiddleBandPrefersGlass(t *testing.T) {
	t.Parallel()

	obs := MatchMaterial("#87CEEB", 0.5)
	if obs.Category != "glass_blue" {
		t.Fatalf("mid-frame sky color matched %q, want glass_blue", obs.Category)
	}
	if obs.Texture == nil || obs.Name != "Blue Glass Facade" {
		t.Fatalf("glass match should carry its facade texture, got name %q", obs.Name)
	}
}

func TestMatchMaterialGroundBand(t *testing.T) {
	t.Parallel()

	if obs := MatchMaterial("#00FF00", 0.9); obs.Category != "grass_green" {
		t.Fatalf("bottom green matched %q, want grass_green", obs.Category)
	}
	obs := MatchMaterial("#8B4513", 0.8)
	if obs.Category != "wood_brown" {
		t.Fatalf("bottom brown matched %q, want wood_brown", obs.Category)
	}
	if obs.Texture == nil || obs.Texture.Name != "Wood Planks" {
		t.Fatalf("wood match lost its texture: %+v", obs.Texture)
	}
}

func TestMatchMaterialWhiteAnyBand(t *testing.T) {
	t.Parallel()

	// Pure white matches plaster exactly; a bias on other categories must
	// never beat a zero-distance unbiased match with nonzero distance.
	for _, pos := range []float64{0.1, 0.5, 0.9} {
		if obs := MatchMaterial("#FFFFFF", pos); obs.Category != "plaster_white" {
			t.Fatalf("white at %.1f matched %q, want plaster_white", pos, obs.Category)
		}
	}
}

func TestMatchMaterialAlwaysReturnsCatalogCategory(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	colors := []string{"#123456", "#fedcba", "#00ff88", "#808080", "not-a-color", ""}
	for _, hex := range colors {
		for _, pos := range []float64{0.0, 0.3, 0.5, 0.7, 1.0} {
			obs := MatchMaterial(hex, pos)
			if _, ok := c.ByKey(obs.Category); !ok {
				t.Fatalf("match of %q at %.1f returned unknown category %q", hex, pos, obs.Category)
			}
			if obs.Hex != hex {
				t.Fatalf("match of %q rewrote the sampled hex to %q", hex, obs.Hex)
			}
		}
	}
}

func TestMatchMaterialBadHexFallsBackToGray(t *testing.T) {
	t.Parallel()

	// Unparseable colors are treated as neutral gray, which is an exact
	// concrete reference color.
	if obs := MatchMaterial("zzz", 0.5); obs.Category != "concrete_gray" {
		t.Fatalf("bad hex matched %q, want concrete_gray", obs.Category)
	}
}

func TestGenerateSuggestionsEmptyPalette(t *testing.T) {
	t.Parallel()

	if got := GenerateSuggestions(nil, 800, 600); len(got) != 0 {
		t.Fatalf("empty palette produced %d suggestions", len(got))
	}
}

func TestGenerateSuggestionsSlotLayout(t *testing.T) {
	t.Parallel()

	palette := []string{
		"#87CEEB", "#808080", "#8B4513", "#FFFFFF",
		"#B22222", "#228B22", "#C0C0C0", "#F5F5DC",
	}
	got := GenerateSuggestions(palette, 1920, 1080)
	if len(got) != 6 {
		t.Fatalf("eight palette colors produced %d suggestions, want 6", len(got))
	}
	for i, obs := range got {
		if obs.X != slotLayout[i][0] || obs.Y != slotLayout[i][1] {
			t.Fatalf("suggestion %d placed at (%d,%d), want (%d,%d)",
				i, obs.X, obs.Y, slotLayout[i][0], slotLayout[i][1])
		}
		if obs.Hex != palette[i] {
			t.Fatalf("suggestion %d carries hex %q, want palette rank order %q", i, obs.Hex, palette[i])
		}
	}

	// Rank 0 sits at y=20, inside the upper band, so the sky color on top
	// resolves to sky.
	if got[0].Category != "sky_blue" {
		t.Fatalf("top slot matched %q, want sky_blue", got[0].Category)
	}
	// Rank 2 sits at y=75, in the lower band, where wood is favored.
	if got[2].Category != "wood_brown" {
		t.Fatalf("bottom slot matched %q, want wood_brown", got[2].Category)
	}
}

func TestClassifyBand(t *testing.T) {
	t.Parallel()

	p := NewMatchParams()
	tests := []struct {
		pos  float64
		want verticalBand
	}{
		{0.0, bandUpper},
		{0.29, bandUpper},
		{0.3, bandMiddle},
		{0.5, bandMiddle},
		{0.7, bandMiddle},
		{0.71, bandLower},
		{1.0, bandLower},
	}
	for _, tt := range tests {
		if got := p.classifyBand(tt.pos); got != tt.want {
			t.Fatalf("classifyBand(%.2f) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestHumanizeKey(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"glass_blue", "Glass Blue"},
		{"sky_blue", "Sky Blue"},
		{"fabric_neutral", "Fabric Neutral"},
	}
	for _, tt := range tests {
		if got := humanizeKey(tt.in); got != tt.want {
			t.Fatalf("humanizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
