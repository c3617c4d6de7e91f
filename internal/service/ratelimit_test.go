package service_test

import (
	"testing"

	"github.com/msomdec/pixwall/internal/service"
)

func TestUploadLimiter_AllowsUpToCapacity(t *testing.T) {
	l := service.NewUploadLimiter(3) // 3 uploads/min, burst of 3

	// Should allow 3 uploads immediately (full bucket).
	for i := 0; i < 3; i++ {
		if !l.Allow("test-key") {
			t.Fatalf("upload %d should be allowed (bucket not yet empty)", i+1)
		}
	}

	// 4th upload should be denied (bucket empty, refill is ~0.05/s).
	if l.Allow("test-key") {
		t.Fatal("4th upload should be denied (bucket empty)")
	}
}

func TestUploadLimiter_DifferentKeysAreIndependent(t *testing.T) {
	l := service.NewUploadLimiter(1)

	if !l.Allow("host-a") {
		t.Fatal("host-a first upload should be allowed")
	}
	if l.Allow("host-a") {
		t.Fatal("host-a second upload should be denied")
	}

	// host-b has its own bucket.
	if !l.Allow("host-b") {
		t.Fatal("host-b first upload should be allowed (independent bucket)")
	}
}

func TestUploadLimiter_NewKeyStartsFull(t *testing.T) {
	l := service.NewUploadLimiter(5)

	for i := 0; i < 5; i++ {
		if !l.Allow("new-key") {
			t.Fatalf("new key upload %d should be allowed (starts full)", i+1)
		}
	}
	if l.Allow("new-key") {
		t.Fatal("6th upload should be denied")
	}
}
