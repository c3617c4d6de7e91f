package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/msomdec/pixwall/internal/domain"
)

const (
	// Quality of the final lossy encoding.
	encodeQuality = 90
	// Fixed opacity of the color overlay composite.
	overlayOpacity = 0.3
)

// TransformResult reports one pipeline invocation. When Degraded is set
// the pipeline could not complete and Image is the unmodified input;
// Reason records why, for telemetry and tests. A degraded result is not a
// hard error — callers that must tell a failed edit from a no-op edit
// check the flag.
type TransformResult struct {
	Image    domain.Image
	Degraded bool
	Reason   error
}

// TransformService runs the edit pipeline: crop+rotate, filter chain,
// lossy re-encode. All working rasters are scoped to one Apply call.
type TransformService struct {
	renderer domain.Renderer
	blobs    domain.BlobStore
}

// NewTransformService creates a new TransformService. A nil renderer is
// allowed and makes every invocation degrade, for headless contexts.
func NewTransformService(renderer domain.Renderer, blobs domain.BlobStore) *TransformService {
	return &TransformService{renderer: renderer, blobs: blobs}
}

// Apply produces a new record with re-encoded bytes and updated
// dimensions; every other field of the input is preserved. The input
// record is never mutated. Any stage failure degrades to the original.
func (s *TransformService) Apply(ctx context.Context, img domain.Image, opts domain.TransformOptions) TransformResult {
	degrade := func(reason error) TransformResult {
		slog.Debug("transform degraded", "id", img.ID, "reason", reason)
		return TransformResult{Image: img, Degraded: true, Reason: reason}
	}

	if s.renderer == nil {
		return degrade(errors.New("rendering backend unavailable"))
	}
	if img.StorageKey == "" {
		return degrade(errors.New("image bytes are not locally stored"))
	}

	data, _, err := s.blobs.Get(ctx, img.StorageKey)
	if err != nil {
		return degrade(fmt.Errorf("load source bytes: %w", err))
	}
	src, err := s.renderer.Decode(data)
	if err != nil {
		return degrade(fmt.Errorf("decode source: %w", err))
	}

	// Stage 1: crop + rotate. Skipped entirely until the caller has
	// established a crop rectangle.
	raster := src
	if opts.Crop != nil {
		cropped, err := cropRotate(src, *opts.Crop, opts.Rotation)
		if err != nil {
			return degrade(err)
		}
		raster = cropped
	}

	// Stage 2: filter chain, then the optional overlay composite.
	raster = applyFilters(raster, opts)
	if opts.Overlay {
		col, err := parseHexColor(opts.OverlayHex)
		if err != nil {
			return degrade(fmt.Errorf("overlay color: %w", err))
		}
		raster = overlayBlend(imaging.Clone(raster), col, overlayOpacity)
	}

	// Stage 3: lossy re-encode.
	encoded, err := s.renderer.Encode(raster, encodeQuality)
	if err != nil {
		return degrade(fmt.Errorf("encode result: %w", err))
	}

	key := newStorageKey()
	if err := s.blobs.Save(ctx, key, "image/jpeg", encoded); err != nil {
		return degrade(fmt.Errorf("store result: %w", err))
	}

	bounds := raster.Bounds()
	out := img
	out.StorageKey = key
	out.Src = "/blobs/" + key
	out.ContentType = "image/jpeg"
	out.Width = bounds.Dx()
	out.Height = bounds.Dy()
	return TransformResult{Image: out}
}

// cropRotate renders the source onto a square working surface sized to
// the larger source dimension (so rotation never clips), rotates it about
// the center, and extracts the crop rectangle from the rotated raster.
// Rotation input is clockwise-positive degrees; imaging rotates
// counter-clockwise, hence the sign flip.
func cropRotate(src image.Image, crop domain.CropRect, rotation float64) (*image.NRGBA, error) {
	if crop.Width <= 0 || crop.Height <= 0 {
		return nil, fmt.Errorf("crop rectangle %dx%d is empty", crop.Width, crop.Height)
	}

	bounds := src.Bounds()
	size := bounds.Dx()
	if bounds.Dy() > size {
		size = bounds.Dy()
	}

	rotated := imaging.Rotate(src, -rotation, color.NRGBA{})
	surface := imaging.New(size, size, color.NRGBA{})
	surface = imaging.PasteCenter(surface, rotated)

	rect := image.Rect(crop.X, crop.Y, crop.X+crop.Width, crop.Y+crop.Height)
	if !rect.Overlaps(surface.Bounds()) {
		return nil, fmt.Errorf("crop rectangle %v is outside the working surface", rect)
	}
	return imaging.Crop(surface, rect), nil
}

// applyFilters maps the percent parameters (identity 100) onto relative
// adjustments and applies them in the fixed order brightness, contrast,
// saturation, blur. Identity parameters skip their pass so an untouched
// slider costs nothing and compounds no rounding error.
func applyFilters(src image.Image, opts domain.TransformOptions) image.Image {
	out := src
	if opts.Brightness != 100 {
		out = imaging.AdjustBrightness(out, clampAdjust(opts.Brightness-100))
	}
	if opts.Contrast != 100 {
		out = imaging.AdjustContrast(out, clampAdjust(opts.Contrast-100))
	}
	if opts.Saturation != 100 {
		out = imaging.AdjustSaturation(out, clampAdjust(opts.Saturation-100))
	}
	if opts.Blur > 0 {
		out = imaging.Blur(out, opts.Blur)
	}
	return out
}

func clampAdjust(v float64) float64 {
	if v < -100 {
		return -100
	}
	if v > 100 {
		return 100
	}
	return v
}

// overlayBlend composites a flat color over base using the "overlay"
// blend mode at the given opacity. Alpha is left untouched. The blend is
// the W3C compositing formula: darker base channels multiply, lighter
// ones screen.
func overlayBlend(base *image.NRGBA, col color.NRGBA, opacity float64) *image.NRGBA {
	overlay := [3]float64{
		float64(col.R) / 255,
		float64(col.G) / 255,
		float64(col.B) / 255,
	}

	bounds := base.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := base.Pix[(y-bounds.Min.Y)*base.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			px := row[x*4 : x*4+4]
			for i := 0; i < 3; i++ {
				b := float64(px[i]) / 255
				var v float64
				if b <= 0.5 {
					v = 2 * b * overlay[i]
				} else {
					v = 1 - 2*(1-b)*(1-overlay[i])
				}
				blended := b*(1-opacity) + v*opacity
				px[i] = uint8(blended*255 + 0.5)
			}
		}
	}
	return base
}

// parseHexColor parses "#rrggbb" (case-insensitive).
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%w: want #rrggbb, got %q", domain.ErrInvalidInput, s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexVal(s[1+i*2])
		lo, ok2 := hexVal(s[2+i*2])
		if !ok1 || !ok2 {
			return color.NRGBA{}, fmt.Errorf("%w: want #rrggbb, got %q", domain.ErrInvalidInput, s)
		}
		rgb[i] = hi<<4 | lo
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// newStorageKey returns a fresh opaque key for the blob store.
func newStorageKey() string {
	return uuid.NewString()
}
