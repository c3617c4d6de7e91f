// Package memory holds the session-scoped image record store. The store
// owns the backing list: the full ordered sequence of records that
// filtering subsets and reordering permutes. It is the only shared
// mutable state in the system and is mutated exclusively through
// whole-record replacement and whole-list updates, so readers never
// observe a record or a list mid-change.
package memory

import (
	"sync"
	"time"

	"github.com/msomdec/pixwall/internal/domain"
)

// Store is an ordered in-memory list of image records.
type Store struct {
	mu     sync.RWMutex
	images []domain.Image
	nextID int64
}

// NewStore creates an empty store. Fresh IDs are time-derived so records
// created across restarts within one deployment never collide with seeds.
func NewStore() *Store {
	return &Store{nextID: time.Now().UnixMilli()}
}

// Snapshot returns a copy of the backing list in display order. The copy
// is the caller's to keep; mutating it never affects the store.
func (s *Store) Snapshot() []domain.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Image, len(s.images))
	copy(out, s.images)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

// Get returns the record with the given ID.
func (s *Store) Get(id int64) (domain.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, img := range s.images {
		if img.ID == id {
			return img, true
		}
	}
	return domain.Image{}, false
}

// Prepend inserts a record at the front of the list, assigning a fresh ID
// when the record carries none. It returns the stored record.
func (s *Store) Prepend(img domain.Image) domain.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assignID(&img)
	s.images = append([]domain.Image{img}, s.images...)
	return img
}

// Append inserts a record at the end of the list, assigning a fresh ID
// when the record carries none. Used for seeding.
func (s *Store) Append(img domain.Image) domain.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assignID(&img)
	s.images = append(s.images, img)
	return img
}

// Replace swaps the record with the same ID for the given one, atomically
// and in place (order is preserved). It returns the superseded record so
// the caller can release any transient resources it held.
func (s *Store) Replace(img domain.Image) (domain.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.images {
		if existing.ID == img.ID {
			s.images[i] = img
			return existing, nil
		}
	}
	return domain.Image{}, domain.ErrNotFound
}

// Update applies mut to a copy of the backing list and installs the result
// as a single atomic replacement. mut must return a list containing the
// same records (any order); IDs are not re-assigned.
func (s *Store) Update(mut func(images []domain.Image) []domain.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := make([]domain.Image, len(s.images))
	copy(working, s.images)
	s.images = mut(working)
}

func (s *Store) assignID(img *domain.Image) {
	if img.ID == 0 {
		img.ID = s.nextID
		s.nextID++
		return
	}
	// Seeded records bring their own IDs; keep fresh IDs above them.
	if img.ID >= s.nextID {
		s.nextID = img.ID + 1
	}
}
