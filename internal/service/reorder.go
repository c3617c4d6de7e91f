package service

import "github.com/msomdec/pixwall/internal/domain"

// Reorder moves the record identified by sourceID to the position held by
// targetID, shifting the records between them by one. Positions are
// resolved against the full backing list, never the filtered view, so
// records hidden by an active filter keep their relative order.
//
// The move is a no-op — the input is returned unchanged — when the two
// IDs are equal or either cannot be found. An unresolved endpoint is an
// ignorable race between a drag gesture and a concurrent filter change,
// not an error.
func Reorder(images []domain.Image, sourceID, targetID int64) []domain.Image {
	if sourceID == targetID {
		return images
	}

	oldIndex, newIndex := -1, -1
	for i, img := range images {
		if img.ID == sourceID {
			oldIndex = i
		}
		if img.ID == targetID {
			newIndex = i
		}
	}
	if oldIndex == -1 || newIndex == -1 {
		return images
	}

	out := make([]domain.Image, len(images))
	copy(out, images)

	moved := out[oldIndex]
	out = append(out[:oldIndex], out[oldIndex+1:]...)
	out = append(out, domain.Image{})
	copy(out[newIndex+1:], out[newIndex:])
	out[newIndex] = moved
	return out
}
