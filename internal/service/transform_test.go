package service_test

import (
	"context"
	"testing"

	"github.com/msomdec/pixwall/internal/domain"
	"github.com/msomdec/pixwall/internal/service"
)

// storedTestImage saves encoded bytes and returns a record pointing at them.
func storedTestImage(t *testing.T, blobs *memBlobStore, width, height int) domain.Image {
	t.Helper()
	data := testJPEG(t, width, height)
	key := "test-source"
	if err := blobs.Save(context.Background(), key, "image/jpeg", data); err != nil {
		t.Fatalf("save test blob: %v", err)
	}
	return domain.Image{
		ID:          1,
		Title:       "Test",
		Src:         "/blobs/" + key,
		StorageKey:  key,
		ContentType: "image/jpeg",
		Width:       width,
		Height:      height,
		Editable:    true,
	}
}

func TestTransformService_Apply_IdentityReencodes(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)
	img := storedTestImage(t, blobs, 20, 15)

	result := svc.Apply(context.Background(), img, domain.DefaultTransformOptions())
	if result.Degraded {
		t.Fatalf("unexpected degraded result: %v", result.Reason)
	}
	if result.Image.Width != 20 || result.Image.Height != 15 {
		t.Fatalf("identity transform changed dimensions to %dx%d", result.Image.Width, result.Image.Height)
	}
	if result.Image.StorageKey == img.StorageKey {
		t.Fatal("expected fresh bytes under a new key")
	}
	if result.Image.ContentType != "image/jpeg" {
		t.Fatalf("expected a JPEG result, got %q", result.Image.ContentType)
	}

	// The result bytes exist and decode.
	data, _, err := blobs.Get(context.Background(), result.Image.StorageKey)
	if err != nil {
		t.Fatalf("get result blob: %v", err)
	}
	if _, err := (service.ImagingRenderer{}).Decode(data); err != nil {
		t.Fatalf("decode result: %v", err)
	}
}

func TestTransformService_Apply_InputNotMutated(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)
	img := storedTestImage(t, blobs, 20, 15)

	opts := domain.DefaultTransformOptions()
	opts.Brightness = 150
	svc.Apply(context.Background(), img, opts)

	if img.StorageKey != "test-source" || img.Width != 20 {
		t.Fatal("Apply mutated its input record")
	}
}

func TestTransformService_Apply_CropFromRotatedSurface(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)
	img := storedTestImage(t, blobs, 20, 15)

	opts := domain.DefaultTransformOptions()
	opts.Crop = &domain.CropRect{X: 2, Y: 2, Width: 8, Height: 6}
	opts.Rotation = 90

	result := svc.Apply(context.Background(), img, opts)
	if result.Degraded {
		t.Fatalf("unexpected degraded result: %v", result.Reason)
	}
	if result.Image.Width != 8 || result.Image.Height != 6 {
		t.Fatalf("expected the crop to set 8x6, got %dx%d", result.Image.Width, result.Image.Height)
	}
}

func TestTransformService_Apply_RotationWithoutCropIsSkipped(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)
	img := storedTestImage(t, blobs, 20, 15)

	// Rotation belongs to the crop stage; without a rectangle the stage
	// does not run and the dimensions stay put.
	opts := domain.DefaultTransformOptions()
	opts.Rotation = 90

	result := svc.Apply(context.Background(), img, opts)
	if result.Degraded {
		t.Fatalf("unexpected degraded result: %v", result.Reason)
	}
	if result.Image.Width != 20 || result.Image.Height != 15 {
		t.Fatalf("expected 20x15, got %dx%d", result.Image.Width, result.Image.Height)
	}
}

func TestTransformService_Apply_EmptyCropDegrades(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)
	img := storedTestImage(t, blobs, 20, 15)

	opts := domain.DefaultTransformOptions()
	opts.Crop = &domain.CropRect{X: 0, Y: 0, Width: 0, Height: 10}

	result := svc.Apply(context.Background(), img, opts)
	if !result.Degraded {
		t.Fatal("expected an empty crop rectangle to degrade")
	}
	if result.Image.StorageKey != img.StorageKey {
		t.Fatal("degraded result must carry the unmodified record")
	}
}

func TestTransformService_Apply_Overlay(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)
	img := storedTestImage(t, blobs, 10, 10)

	opts := domain.DefaultTransformOptions()
	opts.Overlay = true
	opts.OverlayHex = "#3366FF"

	result := svc.Apply(context.Background(), img, opts)
	if result.Degraded {
		t.Fatalf("unexpected degraded result: %v", result.Reason)
	}

	// The composite changes pixel values relative to an identity pass.
	identity := svc.Apply(context.Background(), img, domain.DefaultTransformOptions())
	overlaid, _, _ := blobs.Get(context.Background(), result.Image.StorageKey)
	plain, _, _ := blobs.Get(context.Background(), identity.Image.StorageKey)
	if string(overlaid) == string(plain) {
		t.Fatal("expected the overlay to change the encoded bytes")
	}
}

func TestTransformService_Apply_BadOverlayColorDegrades(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)
	img := storedTestImage(t, blobs, 10, 10)

	for _, hex := range []string{"", "3366FF", "#33F", "#gggggg"} {
		opts := domain.DefaultTransformOptions()
		opts.Overlay = true
		opts.OverlayHex = hex

		result := svc.Apply(context.Background(), img, opts)
		if !result.Degraded {
			t.Fatalf("expected overlay color %q to degrade", hex)
		}
	}
}

func TestTransformService_Apply_MissingSourceDegrades(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)

	// No blob saved under this key.
	img := domain.Image{ID: 1, StorageKey: "missing", Editable: true}
	result := svc.Apply(context.Background(), img, domain.DefaultTransformOptions())
	if !result.Degraded {
		t.Fatal("expected a missing source blob to degrade")
	}

	// A record never stored locally degrades before touching the store.
	remote := domain.Image{ID: 2, Src: "https://example.com/x.jpg"}
	result = svc.Apply(context.Background(), remote, domain.DefaultTransformOptions())
	if !result.Degraded {
		t.Fatal("expected a remote-only record to degrade")
	}
}

func TestTransformService_Apply_NilRendererDegrades(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(nil, blobs)
	img := storedTestImage(t, blobs, 10, 10)

	result := svc.Apply(context.Background(), img, domain.DefaultTransformOptions())
	if !result.Degraded {
		t.Fatal("expected a nil renderer to degrade")
	}
	if result.Reason == nil {
		t.Fatal("expected the degradation reason to be recorded")
	}
}

func TestTransformService_Apply_FilterChain(t *testing.T) {
	blobs := newMemBlobStore()
	svc := service.NewTransformService(service.ImagingRenderer{}, blobs)
	img := storedTestImage(t, blobs, 10, 10)

	opts := domain.DefaultTransformOptions()
	opts.Brightness = 130
	opts.Contrast = 80
	opts.Saturation = 250 // clamped to +100 relative
	opts.Blur = 1.5

	result := svc.Apply(context.Background(), img, opts)
	if result.Degraded {
		t.Fatalf("unexpected degraded result: %v", result.Reason)
	}
	if result.Image.Width != 10 || result.Image.Height != 10 {
		t.Fatalf("filters must not resize, got %dx%d", result.Image.Width, result.Image.Height)
	}
}
