package handler

import (
	"net/http"
	"strconv"

	"github.com/msomdec/pixwall/internal/domain"
	"github.com/msomdec/pixwall/internal/service"
)

// GalleryHandler serves the derived view pipeline output and the reorder
// endpoint. It holds no gallery state of its own.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

func filterFromQuery(r *http.Request) domain.FilterState {
	q := r.URL.Query()
	return domain.FilterState{
		Category: q.Get("category"),
		Query:    q.Get("q"),
	}
}

// HandleList returns the visible records for the current filter state.
// GET /api/images?category=&q=
func (h *GalleryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	visible := h.gallery.Visible(filterFromQuery(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"images": toImageDTOs(visible),
		"count":  len(visible),
	})
}

// HandleCategories returns the sorted category set of the whole gallery.
// GET /api/categories
func (h *GalleryHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": h.gallery.Categories(),
	})
}

// HandleSlides returns the visible records in the lightbox slide shape.
// GET /api/slides?category=&q=
func (h *GalleryHandler) HandleSlides(w http.ResponseWriter, r *http.Request) {
	visible := h.gallery.Visible(filterFromQuery(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"slides": toSlideDTOs(visible),
	})
}

// reorderRequest carries the drag endpoints as the display layer sends
// them: stringified record IDs.
type reorderRequest struct {
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
}

// HandleReorder moves one record to another's position in the backing
// list. Endpoints that do not resolve (a drag racing a filter change) are
// silently ignored; the response is 204 either way.
// POST /api/images/reorder
func (h *GalleryHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid reorder request")
		return
	}

	sourceID, errSrc := strconv.ParseInt(req.SourceID, 10, 64)
	targetID, errDst := strconv.ParseInt(req.TargetID, 10, 64)
	if errSrc == nil && errDst == nil {
		h.gallery.Reorder(sourceID, targetID)
	}

	w.WriteHeader(http.StatusNoContent)
}
