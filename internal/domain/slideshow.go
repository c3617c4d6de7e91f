package domain

import "time"

// Slideshow is a viewer session over a snapshot of the visible list.
// SlideIDs are captured when the show starts; later filter changes or
// reorders do not affect a running show.
type Slideshow struct {
	ID          string
	SlideIDs    []int64
	Current     int // index into SlideIDs
	IntervalSec int
	Status      string
	StartedAt   time.Time
}

const (
	SlideshowStatusActive = "active"
	SlideshowStatusPaused = "paused"
)
