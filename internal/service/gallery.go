package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/msomdec/pixwall/internal/domain"
	"github.com/msomdec/pixwall/internal/repository/memory"
)

// GalleryService owns the backing list and coordinates the pipelines
// around it. All mutations go through it so transient blob references are
// released exactly once, when the record holding them is superseded.
type GalleryService struct {
	store     *memory.Store
	blobs     domain.BlobStore
	uploads   *UploadService
	transform *TransformService
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(store *memory.Store, blobs domain.BlobStore, uploads *UploadService, transform *TransformService) *GalleryService {
	return &GalleryService{store: store, blobs: blobs, uploads: uploads, transform: transform}
}

// All returns a snapshot of the backing list in display order.
func (s *GalleryService) All() []domain.Image {
	return s.store.Snapshot()
}

// Count returns the number of records in the backing list.
func (s *GalleryService) Count() int {
	return s.store.Len()
}

// Visible runs the derived view pipeline over the current backing list.
func (s *GalleryService) Visible(filter domain.FilterState) []domain.Image {
	return VisibleImages(s.store.Snapshot(), filter)
}

// Categories returns the sorted category set of the current backing list.
func (s *GalleryService) Categories() []string {
	return Categories(s.store.Snapshot())
}

// Get returns the record with the given ID.
func (s *GalleryService) Get(id int64) (domain.Image, error) {
	img, ok := s.store.Get(id)
	if !ok {
		return domain.Image{}, domain.ErrNotFound
	}
	return img, nil
}

// Upload ingests a candidate file and prepends the new record, matching
// the reference gallery which shows the latest upload first.
func (s *GalleryService) Upload(ctx context.Context, filename, contentType string, data []byte) (domain.Image, error) {
	img, err := s.uploads.Ingest(ctx, filename, contentType, data)
	if err != nil {
		return domain.Image{}, err
	}
	return s.store.Prepend(*img), nil
}

// SaveEdit runs the transformation pipeline for one record and, when it
// completes, installs the result as an atomic whole-record replacement.
// A degraded pipeline leaves the store untouched; the caller sees the
// original record with the degraded flag set.
func (s *GalleryService) SaveEdit(ctx context.Context, id int64, opts domain.TransformOptions) (TransformResult, error) {
	img, err := s.Get(id)
	if err != nil {
		return TransformResult{}, err
	}
	if !img.Editable {
		return TransformResult{}, fmt.Errorf("%w: image %d is not editable", domain.ErrInvalidInput, id)
	}

	result := s.transform.Apply(ctx, img, opts)
	if result.Degraded {
		slog.Warn("image edit degraded", "id", id, "reason", result.Reason)
		return result, nil
	}

	old, err := s.store.Replace(result.Image)
	if err != nil {
		// The record vanished mid-edit; release the freshly stored bytes.
		s.releaseBlob(ctx, result.Image.StorageKey)
		return TransformResult{}, err
	}
	if old.StorageKey != "" && old.StorageKey != result.Image.StorageKey {
		s.releaseBlob(ctx, old.StorageKey)
	}
	return result, nil
}

// Reorder moves one record to the position of another in the backing
// list, as a single atomic list replacement. Unresolved endpoints are a
// silent no-op (a drag racing a filter change).
func (s *GalleryService) Reorder(sourceID, targetID int64) {
	s.store.Update(func(images []domain.Image) []domain.Image {
		return Reorder(images, sourceID, targetID)
	})
}

// Blob returns stored bytes and their content type by storage key.
func (s *GalleryService) Blob(ctx context.Context, key string) ([]byte, string, error) {
	return s.blobs.Get(ctx, key)
}

// Placeholder renders a record's blurhash preview as PNG bytes. Records
// without a stored hash get one derived from their title.
func (s *GalleryService) Placeholder(id int64, width, height int) ([]byte, error) {
	img, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	hash := img.Placeholder
	if hash == "" {
		hash = PlaceholderForTitle(img.Title)
	}
	return RenderPlaceholder(hash, width, height)
}

func (s *GalleryService) releaseBlob(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.blobs.Delete(ctx, key); err != nil {
		slog.Warn("release blob", "key", key, "error", err)
	}
}
