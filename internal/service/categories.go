package service

import "strings"

// categoryRule maps one category to the filename keywords that select it.
// Rules are an explicit ordered list so detection never depends on map
// iteration order; each rule contributes its category at most once.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"nature", []string{"nature", "outdoor", "landscape", "mountain", "forest", "tree", "lake", "river", "ocean", "beach", "sky", "flower", "plant", "garden", "park"}},
	{"animals", []string{"animal", "pet", "dog", "cat", "bird", "wildlife", "zoo"}},
	{"people", []string{"people", "person", "portrait", "face", "selfie", "family", "group", "wedding", "party"}},
	{"urban", []string{"city", "urban", "street", "building", "architecture", "skyline", "downtown", "bridge"}},
	{"food", []string{"food", "meal", "dinner", "lunch", "breakfast", "restaurant", "cooking", "dish", "cuisine"}},
	{"travel", []string{"travel", "vacation", "trip", "journey", "adventure", "destination", "tourism"}},
	{"art", []string{"art", "painting", "drawing", "illustration", "design", "artwork", "creative", "sculpture"}},
	{"technology", []string{"tech", "technology", "computer", "digital", "electronic", "gadget", "device"}},
	{"vehicle", []string{"car", "vehicle", "transportation", "bike", "motorcycle", "boat", "train", "plane", "airplane"}},
	{"abstract", []string{"abstract", "pattern", "texture", "minimal", "simple", "geometric"}},
	{"night", []string{"night", "dark", "evening", "stars", "moon", "sunset", "sunrise", "dusk", "dawn"}},
	{"sport", []string{"sport", "game", "play", "fitness", "exercise", "workout", "athletic", "ball"}},
	{"water", []string{"water", "beach", "lake", "river", "ocean", "sea", "pool", "waterfall", "rain", "drop", "splash"}},
	{"winter", []string{"winter", "snow", "cold", "ice", "frost", "freeze", "chill"}},
	{"summer", []string{"summer", "hot", "beach", "sun", "sunny", "vacation", "holiday"}},
	{"autumn", []string{"autumn", "fall", "leaves", "orange", "brown", "maple", "foliage"}},
	{"spring", []string{"spring", "bloom", "flower", "blossom", "green", "fresh"}},
}

// DetectCategories derives a category set from filename keywords. A name
// can match several categories; a name matching none gets "other".
func DetectCategories(filename string) []string {
	lower := strings.ToLower(filename)

	var categories []string
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				categories = append(categories, rule.category)
				break
			}
		}
	}

	if len(categories) == 0 {
		return []string{"other"}
	}
	return categories
}
