package service

import "github.com/msomdec/pixwall/internal/domain"

// Seed installs the built-in demo records when the store is empty
// (idempotent). Seeded records keep their fixed IDs and are not editable.
func (s *GalleryService) Seed() {
	if s.store.Len() > 0 {
		return
	}
	for _, img := range seedImages {
		s.store.Append(img)
	}
}

// The demo gallery: stable remote URLs with precomputed placeholder
// hashes. Exactly eight records carry the "nature" category.
var seedImages = []domain.Image{
	{
		ID:          1,
		Title:       "Mountain Landscape",
		Description: "A beautiful mountain landscape with snow-capped peaks. Perfect for nature lovers and hikers.",
		Src:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
		Alt:         "Mountain landscape with snow-capped peaks",
		Width:       2070,
		Height:      1380,
		Placeholder: hashMountain,
		Categories:  []string{"nature", "mountains", "landscape"},
	},
	{
		ID:          2,
		Title:       "Beach Sunset",
		Description: "Golden sunset over a tropical beach. Experience the warm glow of the sun as it meets the ocean.",
		Src:         "https://images.unsplash.com/photo-1507525428034-b723cf961d3e",
		Alt:         "Golden sunset over a tropical beach",
		Width:       2073,
		Height:      1386,
		Placeholder: hashBeach,
		Categories:  []string{"nature", "beach", "sunset", "ocean"},
	},
	{
		ID:          3,
		Title:       "City Skyline",
		Description: "Modern city skyline at night with colorful lights. Urban architecture captured in its full glory.",
		Src:         "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df",
		Alt:         "Modern city skyline at night",
		Width:       2044,
		Height:      1363,
		Placeholder: hashCity,
		Categories:  []string{"urban", "city", "architecture", "night"},
	},
	{
		ID:          4,
		Title:       "Forest Path",
		Description: "A serene path through a lush green forest. Peaceful trail surrounded by ancient trees and foliage.",
		Src:         "https://images.unsplash.com/photo-1441974231531-c6227db76b6e",
		Alt:         "Path through a green forest",
		Width:       2071,
		Height:      1381,
		Placeholder: hashForest,
		Categories:  []string{"nature", "forest", "trees", "green"},
	},
	{
		ID:          5,
		Title:       "Desert Dunes",
		Description: "Sweeping sand dunes in a vast desert landscape. Golden waves of sand stretching to the horizon.",
		Src:         "https://images.unsplash.com/photo-1473580044384-7ba9967e16a0",
		Alt:         "Desert sand dunes",
		Width:       2070,
		Height:      1380,
		Placeholder: hashDesert,
		Categories:  []string{"nature", "desert", "landscape", "sand"},
	},
	{
		ID:          6,
		Title:       "Waterfall",
		Description: "Majestic waterfall cascading down rocky cliffs. Powerful waters creating a breathtaking spectacle.",
		Src:         "https://images.unsplash.com/photo-1434608519344-49d77a699e1d",
		Alt:         "Majestic waterfall",
		Width:       2200,
		Height:      1467,
		Placeholder: hashWaterfall,
		Categories:  []string{"nature", "water", "waterfall", "landscape"},
	},
	{
		ID:          7,
		Title:       "Northern Lights",
		Description: "Spectacular aurora borealis lighting up the night sky. Magical green curtains dancing across stars.",
		Src:         "https://images.unsplash.com/photo-1531366936337-7c912a4589a7",
		Alt:         "Northern lights in the sky",
		Width:       2000,
		Height:      1333,
		Placeholder: hashLights,
		Categories:  []string{"nature", "sky", "night", "aurora"},
	},
	{
		ID:          8,
		Title:       "Autumn Forest",
		Description: "Vibrant autumn colors in a dense forest. Rich reds and golds paint the landscape in fall splendor.",
		Src:         "https://images.unsplash.com/photo-1508669232496-137b159c1cdb",
		Alt:         "Autumn forest with colorful leaves",
		Width:       2070,
		Height:      1380,
		Placeholder: hashAutumn,
		Categories:  []string{"nature", "forest", "autumn", "foliage"},
	},
	{
		ID:          9,
		Title:       "Coral Reef",
		Description: "Colorful coral reef teeming with marine life. Underwater ecosystem showing nature's creative wonder.",
		Src:         "https://images.unsplash.com/photo-1546026423-cc4642628d2b",
		Alt:         "Underwater coral reef",
		Width:       2070,
		Height:      1380,
		Placeholder: hashCoral,
		Categories:  []string{"underwater", "ocean", "coral", "marine"},
	},
	{
		ID:          10,
		Title:       "Snowy Cabin",
		Description: "Cozy cabin surrounded by snow-covered pine trees. Winter retreat offering warmth in a frozen landscape.",
		Src:         "https://images.unsplash.com/photo-1482192505345-5655af888cc4",
		Alt:         "Cabin in a snowy forest",
		Width:       2070,
		Height:      1380,
		Placeholder: hashSnowy,
		Categories:  []string{"winter", "snow", "cabin", "trees"},
	},
	{
		ID:          11,
		Title:       "Lavender Field",
		Description: "Endless rows of purple lavender flowers. Fragrant blooms creating a sea of color in the countryside.",
		Src:         "https://images.unsplash.com/photo-1468581264429-2548ef9eb732",
		Alt:         "Field of lavender flowers",
		Width:       2070,
		Height:      1380,
		Placeholder: hashLavender,
		Categories:  []string{"flowers", "purple", "fields", "spring"},
	},
	{
		ID:          12,
		Title:       "Countryside",
		Description: "Rolling hills and farmland in the countryside. Pastoral scenes of green meadows and rural tranquility.",
		Src:         "https://images.unsplash.com/photo-1500382017468-9049fed747ef",
		Alt:         "Countryside landscape with rolling hills",
		Width:       2062,
		Height:      1375,
		Placeholder: hashCountryside,
		Categories:  []string{"nature", "countryside", "fields", "rural"},
	},
}
