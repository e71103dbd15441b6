package aetheria

import "testing"

var wantCategoryOrder = []string{
	"glass_blue", "concrete_gray", "metal_gray", "wood_brown", "brick_red",
	"plaster_white", "grass_green", "sky_blue", "marble_white", "fabric_neutral",
}

func TestDefaultCatalogShape(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	if c.Len() != len(wantCategoryOrder) {
		t.Fatalf("catalog has %d categories, want %d", c.Len(), len(wantCategoryOrder))
	}
	for i, cat := range c.All() {
		if cat.Key != wantCategoryOrder[i] {
			t.Fatalf("category %d is %q, want %q", i, cat.Key, wantCategoryOrder[i])
		}
		if len(cat.Colors) < 3 {
			t.Fatalf("category %q has only %d reference colors", cat.Key, len(cat.Colors))
		}
		for _, hex := range cat.Colors {
			if _, err := HexToRGB(hex); err != nil {
				t.Fatalf("category %q has unparseable color %q: %v", cat.Key, hex, err)
			}
		}
	}
}

func TestCatalogByKey(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	sky, ok := c.ByKey("sky_blue")
	if !ok {
		t.Fatal("sky_blue missing from catalog")
	}
	if len(sky.Textures) != 0 {
		t.Fatalf("sky_blue should carry no texture suggestions, has %d", len(sky.Textures))
	}

	wood, ok := c.ByKey("wood_brown")
	if !ok {
		t.Fatal("wood_brown missing from catalog")
	}
	if len(wood.Textures) != 1 || wood.Textures[0].Name != "Wood Planks" {
		t.Fatalf("unexpected wood_brown textures: %+v", wood.Textures)
	}

	if _, ok := c.ByKey("unobtainium"); ok {
		t.Fatal("lookup of unknown key should fail")
	}
}

func TestCategoryForType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"glass", "glass_blue"},
		{"GLASS", "glass_blue"},
		{"asphalt", "concrete_gray"},
		{"vegetation", "grass_green"},
		{"stone", "marble_white"},
		{"sky", "sky_blue"},
		{"plasma", "concrete_gray"},
		{"", "concrete_gray"},
	}
	for _, tt := range tests {
		if got := CategoryForType(tt.in); got != tt.want {
			t.Fatalf("CategoryForType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
