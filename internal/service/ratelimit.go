package service

import (
	"sync"
	"time"
)

// UploadLimiter is an in-memory per-key token bucket sized for upload
// traffic: a key may burst up to perMinute uploads and then refills at
// perMinute tokens per minute. Safe for concurrent use; stale buckets are
// cleaned up in the background.
type UploadLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64 // maximum tokens
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewUploadLimiter creates a limiter allowing perMinute uploads per key.
func NewUploadLimiter(perMinute float64) *UploadLimiter {
	l := &UploadLimiter{
		buckets:  make(map[string]*bucket),
		rate:     perMinute / 60,
		capacity: perMinute,
	}
	go l.cleanup()
	return l
}

// Allow reports whether the given key may proceed, consuming one token.
func (l *UploadLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, last: time.Now()}
		l.buckets[key] = b
	}

	now := time.Now()
	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*l.rate, l.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// cleanup periodically drops buckets idle for 10 minutes.
func (l *UploadLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, b := range l.buckets {
			if b.last.Before(cutoff) {
				delete(l.buckets, key)
			}
		}
		l.mu.Unlock()
	}
}
