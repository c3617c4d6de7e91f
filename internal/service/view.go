package service

import (
	"sort"
	"strings"

	"github.com/msomdec/pixwall/internal/domain"
)

// The derived view pipeline: pure functions from the backing list and the
// current filter state to the visible list. Filtering only ever subsets —
// relative order always comes from the backing list.

// FilterByCategory retains the records whose category set contains the
// given tag (exact match as stored). An empty category applies no filter.
func FilterByCategory(images []domain.Image, category string) []domain.Image {
	if category == "" {
		return images
	}
	var out []domain.Image
	for _, img := range images {
		if img.HasCategory(category) {
			out = append(out, img)
		}
	}
	return out
}

// SearchImages retains the records whose title or description contains the
// query, case-insensitively. A query of only whitespace applies no filter.
func SearchImages(images []domain.Image, query string) []domain.Image {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return images
	}
	var out []domain.Image
	for _, img := range images {
		if strings.Contains(strings.ToLower(img.Title), q) ||
			strings.Contains(strings.ToLower(img.Description), q) {
			out = append(out, img)
		}
	}
	return out
}

// VisibleImages composes both filters. The two are commutative; category
// is applied first to match the reference behavior.
func VisibleImages(images []domain.Image, filter domain.FilterState) []domain.Image {
	return SearchImages(FilterByCategory(images, filter.Category), filter.Query)
}

// Categories returns the sorted set of every category carried by the
// given records.
func Categories(images []domain.Image) []string {
	seen := make(map[string]bool)
	var out []string
	for _, img := range images {
		for _, c := range img.Categories {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Strings(out)
	return out
}
