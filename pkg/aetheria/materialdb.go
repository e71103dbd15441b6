package aetheria

import "strings"

// Catalog is the read-only material knowledge base. Declaration order of the
// categories is significant: the matcher breaks distance ties by first-seen.
type Catalog struct {
	categories []MaterialCategory
	byKey      map[string]*MaterialCategory
}

func newCatalog(categories []MaterialCategory) *Catalog {
	c := &Catalog{categories: categories, byKey: make(map[string]*MaterialCategory, len(categories))}
	for i := range c.categories {
		c.byKey[c.categories[i].Key] = &c.categories[i]
	}
	return c
}

// ByKey looks up a category; ok reports whether the key exists.
func (c *Catalog) ByKey(key string) (*MaterialCategory, bool) {
	cat, ok := c.byKey[key]
	return cat, ok
}

// All returns the categories in declaration order. Callers must not mutate.
func (c *Catalog) All() []MaterialCategory {
	return c.categories
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

var defaultCatalog = newCatalog([]MaterialCategory{
	{
		Key:      "glass_blue",
		Keywords: []string{"glass", "window", "facade"},
		Colors:   []string{"#87CEEB", "#4682B4", "#5F9EA0", "#B0E0E6"},
		Textures: []TextureSuggestion{{
			Name:          "Blue Glass Facade",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/glass_window/glass_window_diff_2k.jpg",
			Suggestion:    "Reflective Glass",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/glass_window/glass_window_diff_2k.jpg",
			Link:          "https://polyhaven.com/textures/glass",
		}},
	},
	{
		Key:      "concrete_gray",
		Keywords: []string{"concrete", "wall", "building"},
		Colors:   []string{"#808080", "#A9A9A9", "#696969", "#BEBEBE"},
		Textures: []TextureSuggestion{{
			Name:          "Concrete Wall",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/concrete_wall_006/concrete_wall_006_diff_2k.jpg",
			Suggestion:    "Smooth Concrete",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/concrete_floor_02/concrete_floor_02_diff_2k.jpg",
			Link:          "https://polyhaven.com/a/concrete_floor_02",
		}},
	},
	{
		Key:      "metal_gray",
		Keywords: []string{"metal", "steel", "aluminum"},
		Colors:   []string{"#C0C0C0", "#B8B8B8", "#D3D3D3"},
		Textures: []TextureSuggestion{{
			Name:          "Brushed Metal",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/metal_plate/metal_plate_diff_2k.jpg",
			Suggestion:    "Aluminum Panel",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/metal_plate/metal_plate_diff_2k.jpg",
			Link:          "https://polyhaven.com/a/metal_plate",
		}},
	},
	{
		Key:      "wood_brown",
		Keywords: []string{"wood", "timber", "floor"},
		Colors:   []string{"#8B4513", "#A0522D", "#D2691E", "#CD853F"},
		Textures: []TextureSuggestion{{
			Name:          "Wood Planks",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/wood_floor_deck/wood_floor_deck_diff_2k.jpg",
			Suggestion:    "Walnut Veneer",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/walnut_veneer/walnut_veneer_diff_2k.jpg",
			Link:          "https://polyhaven.com/a/walnut_veneer",
		}},
	},
	{
		Key:      "brick_red",
		Keywords: []string{"brick", "masonry"},
		Colors:   []string{"#B22222", "#8B0000", "#A52A2A", "#CD5C5C"},
		Textures: []TextureSuggestion{{
			Name:          "Red Brick",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/brick_wall_001/brick_wall_001_diff_2k.jpg",
			Suggestion:    "Weathered Brick",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/brick_wall_001/brick_wall_001_diff_2k.jpg",
			Link:          "https://polyhaven.com/a/brick_wall_001",
		}},
	},
	{
		Key:      "plaster_white",
		Keywords: []string{"plaster", "wall", "ceiling"},
		Colors:   []string{"#FFFFFF", "#F5F5F5", "#FFFAFA", "#F0F0F0"},
		Textures: []TextureSuggestion{{
			Name:          "White Plaster",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/plaster_02/plaster_02_diff_2k.jpg",
			Suggestion:    "Rough Plaster",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/white_rough_plaster/white_rough_plaster_diff_2k.jpg",
			Link:          "https://polyhaven.com/a/white_rough_plaster",
		}},
	},
	{
		Key:      "grass_green",
		Keywords: []string{"grass", "lawn", "vegetation"},
		Colors:   []string{"#228B22", "#32CD32", "#00FF00", "#7CFC00"},
		Textures: []TextureSuggestion{{
			Name:          "Grass Ground",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/grass_001/grass_001_diff_2k.jpg",
			Suggestion:    "Natural Grass",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/grass_001/grass_001_diff_2k.jpg",
			Link:          "https://polyhaven.com/a/grass_001",
		}},
	},
	{
		Key:      "sky_blue",
		Keywords: []string{"sky", "atmosphere"},
		Colors:   []string{"#87CEEB", "#00BFFF", "#1E90FF", "#6495ED"},
		// Sky needs no texture suggestion.
	},
	{
		Key:      "marble_white",
		Keywords: []string{"marble", "stone"},
		Colors:   []string{"#F8F8FF", "#FFFAF0", "#FAF0E6"},
		Textures: []TextureSuggestion{{
			Name:          "White Marble",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/marble_01/marble_01_diff_2k.jpg",
			Suggestion:    "Carrara Marble",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/marble_01/marble_01_diff_2k.jpg",
			Link:          "https://polyhaven.com/a/marble_01",
		}},
	},
	{
		Key:      "fabric_neutral",
		Keywords: []string{"fabric", "textile", "upholstery"},
		Colors:   []string{"#F5F5DC", "#FAEBD7", "#FFE4C4", "#DEB887"},
		Textures: []TextureSuggestion{{
			Name:          "Fabric Texture",
			TextureURL:    "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/fabric_pattern_07/fabric_pattern_07_col_1_2k.jpg",
			Suggestion:    "Woven Fabric",
			SuggestionURL: "https://dl.polyhaven.com/file/ph-assets/Textures/jpg/2k/fabric_pattern_05/fabric_pattern_05_col_01_2k.jpg",
			Link:          "https://polyhaven.com/a/fabric_pattern_05",
		}},
	},
})

// DefaultCatalog returns the process-wide material knowledge base. It is
// fully constructed at package init and never mutated afterward, so it is
// safe for concurrent readers.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// typeToCategory maps material types reported by the external description
// service onto catalog keys.
var typeToCategory = map[string]string{
	"glass":      "glass_blue",
	"concrete":   "concrete_gray",
	"wood":       "wood_brown",
	"metal":      "metal_gray",
	"brick":      "brick_red",
	"plaster":    "plaster_white",
	"grass":      "grass_green",
	"vegetation": "grass_green",
	"sky":        "sky_blue",
	"marble":     "marble_white",
	"stone":      "marble_white",
	"fabric":     "fabric_neutral",
	"asphalt":    "concrete_gray",
}

// CategoryForType resolves an external material type to a catalog key,
// defaulting to concrete for anything unrecognized.
func CategoryForType(materialType string) string {
	if key, ok := typeToCategory[strings.ToLower(materialType)]; ok {
		return key
	}
	return "concrete_gray"
}
