package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/msomdec/pixwall/internal/domain"
)

// maxUploadSize is the upload ceiling.
const maxUploadSize = 10 << 20 // 10 MiB

// UploadService turns a candidate file into a new gallery record.
type UploadService struct {
	renderer domain.Renderer
	blobs    domain.BlobStore
}

// NewUploadService creates a new UploadService. A nil renderer makes
// every ingestion fail at the decode step, for headless contexts.
func NewUploadService(renderer domain.Renderer, blobs domain.BlobStore) *UploadService {
	return &UploadService{renderer: renderer, blobs: blobs}
}

// Ingest validates the upload, stores its bytes, and derives the record
// metadata (dimensions, title, placeholder hash, categories). Validation
// happens before any resource is acquired; a decode failure releases the
// already-stored bytes before it is reported.
func (s *UploadService) Ingest(ctx context.Context, filename, contentType string, data []byte) (*domain.Image, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidType, contentType)
	}
	if len(data) > maxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds the 10MiB limit", domain.ErrTooLarge, len(data))
	}

	key := newStorageKey()
	if err := s.blobs.Save(ctx, key, contentType, data); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	width, height, err := s.decodeBounds(data)
	if err != nil {
		// Release the transient reference before surfacing the failure.
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("%w: %v (release failed: %v)", domain.ErrDecode, err, delErr)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	title := TitleFromFilename(filename)
	return &domain.Image{
		Title:       title,
		Description: "Uploaded on " + time.Now().Format("January 2, 2006"),
		Alt:         title,
		Src:         "/blobs/" + key,
		StorageKey:  key,
		ContentType: contentType,
		Width:       width,
		Height:      height,
		Placeholder: UploadPlaceholder(filename, contentType),
		Categories:  DetectCategories(filename),
		Editable:    true,
	}, nil
}

func (s *UploadService) decodeBounds(data []byte) (int, int, error) {
	if s.renderer == nil {
		return 0, 0, fmt.Errorf("rendering backend unavailable")
	}
	return s.renderer.Bounds(data)
}

// TitleFromFilename derives a display title: the name up to the first
// dot, underscores and hyphens replaced by spaces, each word title-cased.
func TitleFromFilename(name string) string {
	base := name
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
