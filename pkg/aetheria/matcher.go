package aetheria

import "strings"

// MatchParams contains the positional-bias constants used by the matcher.
// The band splits and multipliers are empirical; they are kept configurable
// rather than re-derived.
type MatchParams struct {
	UpperBand  float64 // vertical positions below this are the upper third
	LowerBand  float64 // vertical positions above this are the lower third
	UpperBias  float64 // discount for sky/ceiling materials at the top
	LowerBias  float64 // discount for ground materials at the bottom
	MiddleBias float64 // discount for wall materials in the middle
}

// NewMatchParams creates a MatchParams with default values.
func NewMatchParams() *MatchParams {
	return &MatchParams{
		UpperBand:  0.3,
		LowerBand:  0.7,
		UpperBias:  0.7,
		LowerBias:  0.7,
		MiddleBias: 0.8,
	}
}

type verticalBand int

const (
	bandUpper verticalBand = iota
	bandMiddle
	bandLower
)

func (p *MatchParams) classifyBand(verticalPosition float64) verticalBand {
	switch {
	case verticalPosition < p.UpperBand:
		return bandUpper
	case verticalPosition > p.LowerBand:
		return bandLower
	default:
		return bandMiddle
	}
}

// bias returns the distance multiplier for a category at the given band.
// Bias only ever favors a category; it never excludes one.
func (p *MatchParams) bias(category string, band verticalBand) float64 {
	switch band {
	case bandUpper:
		if category == "sky_blue" || category == "plaster_white" {
			return p.UpperBias
		}
	case bandLower:
		if category == "grass_green" || category == "wood_brown" || category == "concrete_gray" {
			return p.LowerBias
		}
	case bandMiddle:
		if category == "glass_blue" || category == "concrete_gray" || category == "brick_red" {
			return p.MiddleBias
		}
	}
	return 1.0
}

// MatchMaterial finds the best-fitting category for a color sampled at the
// given vertical position (0=top, 1=bottom), using the default catalog and
// bias constants. It never fails: the catalog is non-empty by construction.
func MatchMaterial(hex string, verticalPosition float64) MaterialObservation {
	return DefaultCatalog().MatchMaterial(hex, verticalPosition, NewMatchParams())
}

// MatchMaterial scans every (category, reference color) pair and picks the
// minimum position-biased redmean distance. Equal biased distances prefer
// the more favored (smaller multiplier) category, so a positional bias wins
// even at zero raw distance; remaining ties keep the first-seen pair, making
// catalog declaration order the final deterministic tie-break.
func (c *Catalog) MatchMaterial(hex string, verticalPosition float64, params *MatchParams) MaterialObservation {
	band := params.classifyBand(verticalPosition)

	var best *MaterialCategory
	bestDistance := -1.0
	bestMultiplier := 1.0
	for i := range c.categories {
		cat := &c.categories[i]
		multiplier := params.bias(cat.Key, band)
		for _, ref := range cat.Colors {
			distance := ColorDistance(hex, ref) * multiplier
			if bestDistance < 0 || distance < bestDistance ||
				(distance == bestDistance && multiplier < bestMultiplier) {
				bestDistance = distance
				bestMultiplier = multiplier
				best = cat
			}
		}
	}

	obs := MaterialObservation{
		Category: best.Key,
		Name:     humanizeKey(best.Key),
		Hex:      hex,
	}
	if len(best.Textures) > 0 {
		tex := best.Textures[0]
		obs.Name = tex.Name
		obs.Texture = &tex
	}
	return obs
}

// slotLayout assigns canonical (x, y) image positions to palette ranks,
// approximating common render regions: sky/ceiling on top, walls in the
// middle, floor at the bottom, with right-side variants.
var slotLayout = [6][2]int{
	{30, 20}, // top
	{50, 50}, // middle
	{30, 75}, // bottom
	{70, 30}, // top-right
	{70, 60}, // middle-right
	{50, 80}, // bottom-center
}

// GenerateSuggestions matches up to the first six palette colors against the
// default catalog, assigning each a canonical layout position by rank.
// Output order mirrors palette rank order.
func GenerateSuggestions(palette []string, imageWidth, imageHeight int) []MaterialObservation {
	return DefaultCatalog().GenerateSuggestions(palette, imageWidth, imageHeight, NewMatchParams())
}

// GenerateSuggestions is the batch entry point over a specific catalog.
func (c *Catalog) GenerateSuggestions(palette []string, imageWidth, imageHeight int, params *MatchParams) []MaterialObservation {
	suggestions := make([]MaterialObservation, 0, len(slotLayout))
	for i, hex := range palette {
		if i >= len(slotLayout) {
			break
		}
		x, y := slotLayout[i][0], slotLayout[i][1]
		obs := c.MatchMaterial(hex, float64(y)/100.0, params)
		obs.X = x
		obs.Y = y
		suggestions = append(suggestions, obs)
	}
	return suggestions
}

// humanizeKey turns a category key like "glass_blue" into "Glass Blue".
func humanizeKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
