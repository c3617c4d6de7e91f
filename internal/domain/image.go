package domain

import (
	"context"
	"image"
)

// Image is one gallery record: a reference to picture bytes plus the
// metadata the gallery filters, orders, and edits.
type Image struct {
	ID          int64
	Title       string
	Description string
	Alt         string
	Src         string // stable remote URL, or "/blobs/{key}" for local bytes
	StorageKey  string // set when Src points at bytes held by the BlobStore
	ContentType string // media type of the stored bytes, when local
	Width       int    // natural pixel width, > 0
	Height      int    // natural pixel height, > 0
	Placeholder string // blurhash shown while the image loads; may be empty
	Categories  []string
	Editable    bool // true for user uploads; governs whether edits are offered
}

// HasCategory reports whether the record carries the given tag
// (exact, case-sensitive match as stored).
func (img Image) HasCategory(category string) bool {
	for _, c := range img.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// PlaceholderLength is the length of every built-in placeholder hash.
// The content of a hash is treated as an opaque decode input.
const PlaceholderLength = 28

// FilterState is the ephemeral filter input of the derived view pipeline.
// The zero value means "show everything".
type FilterState struct {
	Category string // empty means no category filter
	Query    string // whitespace-only is treated as empty
}

// CropRect is a crop rectangle in the pixel space of the rotated working
// raster.
type CropRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// TransformOptions is the full edit request for one pipeline invocation.
// Percent fields use 100 as identity; they map onto relative adjustments
// (p - 100) in the raster backend. Blur is a gaussian sigma in pixels.
// Rotation is clockwise-positive degrees. A nil Crop skips the crop+rotate
// stage entirely.
type TransformOptions struct {
	Crop       *CropRect
	Rotation   float64
	Brightness float64 // 0..200, default 100
	Contrast   float64 // 0..200, default 100
	Saturation float64 // 0..200, default 100
	Blur       float64 // >= 0, default 0
	Overlay    bool
	OverlayHex string // "#rrggbb", used when Overlay is set
}

// DefaultTransformOptions returns the identity edit.
func DefaultTransformOptions() TransformOptions {
	return TransformOptions{
		Brightness: 100,
		Contrast:   100,
		Saturation: 100,
	}
}

// Renderer is the abstract rendering backend: decoding image bytes into a
// raster or its dimensions, and encoding a raster back into lossy bytes.
// It can be unavailable (nil) in headless contexts; callers must degrade
// rather than fail hard.
type Renderer interface {
	Decode(data []byte) (image.Image, error)
	Bounds(data []byte) (width, height int, err error)
	Encode(img image.Image, quality int) ([]byte, error)
}

// BlobStore holds transient image bytes for the current session. Keys are
// opaque. Delete releases a reference; bytes never outlive the process.
type BlobStore interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)
	Delete(ctx context.Context, key string) error
}
