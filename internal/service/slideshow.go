package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/pixwall/internal/domain"
)

const (
	defaultSlideIntervalSec = 3
	minSlideIntervalSec     = 1
)

// SlideshowService handles slideshow session lifecycle and navigation.
// A session captures the visible list at start; advancing wraps around.
type SlideshowService struct {
	mu      sync.Mutex
	gallery *GalleryService
	shows   map[string]*domain.Slideshow
}

// NewSlideshowService creates a new SlideshowService.
func NewSlideshowService(gallery *GalleryService) *SlideshowService {
	return &SlideshowService{gallery: gallery, shows: make(map[string]*domain.Slideshow)}
}

// Start creates an active slideshow over the list visible under the
// given filter. An interval below the minimum falls back to the default.
func (s *SlideshowService) Start(filter domain.FilterState, intervalSec int) (*domain.Slideshow, error) {
	visible := s.gallery.Visible(filter)
	if len(visible) == 0 {
		return nil, fmt.Errorf("%w: no images to show", domain.ErrInvalidInput)
	}
	if intervalSec < minSlideIntervalSec {
		intervalSec = defaultSlideIntervalSec
	}

	ids := make([]int64, len(visible))
	for i, img := range visible {
		ids[i] = img.ID
	}

	show := &domain.Slideshow{
		ID:          uuid.NewString(),
		SlideIDs:    ids,
		IntervalSec: intervalSec,
		Status:      domain.SlideshowStatusActive,
		StartedAt:   time.Now(),
	}

	s.mu.Lock()
	s.shows[show.ID] = show
	s.mu.Unlock()

	return snapshotShow(show), nil
}

// Get returns a copy of the session.
func (s *SlideshowService) Get(id string) (*domain.Slideshow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	show, ok := s.shows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return snapshotShow(show), nil
}

// Advance moves to the next slide, wrapping at the end.
func (s *SlideshowService) Advance(id string) (*domain.Slideshow, error) {
	return s.step(id, 1)
}

// Previous moves to the previous slide, wrapping at the start.
func (s *SlideshowService) Previous(id string) (*domain.Slideshow, error) {
	return s.step(id, -1)
}

func (s *SlideshowService) step(id string, delta int) (*domain.Slideshow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	show, ok := s.shows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	n := len(show.SlideIDs)
	show.Current = (show.Current + delta + n) % n
	return snapshotShow(show), nil
}

// Pause pauses an active session.
func (s *SlideshowService) Pause(id string) (*domain.Slideshow, error) {
	return s.setStatus(id, domain.SlideshowStatusActive, domain.SlideshowStatusPaused)
}

// Resume resumes a paused session.
func (s *SlideshowService) Resume(id string) (*domain.Slideshow, error) {
	return s.setStatus(id, domain.SlideshowStatusPaused, domain.SlideshowStatusActive)
}

func (s *SlideshowService) setStatus(id, from, to string) (*domain.Slideshow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	show, ok := s.shows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if show.Status != from {
		return nil, fmt.Errorf("%w: slideshow is not %s", domain.ErrInvalidInput, from)
	}
	show.Status = to
	return snapshotShow(show), nil
}

// Stop discards a session.
func (s *SlideshowService) Stop(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.shows, id)
	return nil
}

// snapshotShow copies a session so callers never share the mutable state.
func snapshotShow(show *domain.Slideshow) *domain.Slideshow {
	out := *show
	out.SlideIDs = append([]int64(nil), show.SlideIDs...)
	return &out
}
