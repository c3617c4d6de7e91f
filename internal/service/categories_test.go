package service_test

import (
	"testing"

	"github.com/msomdec/pixwall/internal/service"
)

func TestDetectCategories(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     []string
	}{
		{"multiple matches", "sunset_at_beach.jpg", []string{"nature", "night", "water", "summer"}},
		{"single match", "my_dog.jpg", []string{"animals"}},
		{"urban", "city-skyline.png", []string{"urban"}},
		{"no match falls back", "xyz123.jpg", []string{"other"}},
		{"case insensitive", "WINTER_Snow.JPG", []string{"winter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.DetectCategories(tt.filename)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectCategories(%q) = %v, want %v", tt.filename, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("DetectCategories(%q) = %v, want %v", tt.filename, got, tt.want)
				}
			}
		})
	}
}

func TestDetectCategories_CategoryAtMostOnce(t *testing.T) {
	// "lake" and "river" both select water; it must appear once.
	got := service.DetectCategories("lake_river.jpg")
	count := 0
	for _, c := range got {
		if c == "water" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected water exactly once, got %v", got)
	}
}
