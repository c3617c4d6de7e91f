package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/pixwall/internal/domain"
	"github.com/msomdec/pixwall/internal/service"
)

// SlideshowHandler manages slideshow sessions over the visible set.
type SlideshowHandler struct {
	slideshows *service.SlideshowService
}

// NewSlideshowHandler creates a new SlideshowHandler.
func NewSlideshowHandler(slideshows *service.SlideshowService) *SlideshowHandler {
	return &SlideshowHandler{slideshows: slideshows}
}

// HandleStart starts a slideshow over the current visible set.
// POST /api/slideshow?category=&q=&interval=
func (h *SlideshowHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	intervalSec, _ := strconv.Atoi(r.URL.Query().Get("interval"))

	show, err := h.slideshows.Start(filterFromQuery(r), intervalSec)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("start slideshow", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toSlideshowDTO(show))
}

// HandleGet returns the current state of a slideshow session.
// GET /api/slideshow/{id}
func (h *SlideshowHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	show, err := h.slideshows.Get(r.PathValue("id"))
	if err != nil {
		h.writeSlideshowError(w, err, "get slideshow")
		return
	}
	writeJSON(w, http.StatusOK, toSlideshowDTO(show))
}

// HandleAdvance moves a slideshow forward one slide, wrapping at the end.
// POST /api/slideshow/{id}/advance
func (h *SlideshowHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	show, err := h.slideshows.Advance(r.PathValue("id"))
	if err != nil {
		h.writeSlideshowError(w, err, "advance slideshow")
		return
	}
	writeJSON(w, http.StatusOK, toSlideshowDTO(show))
}

// HandlePrevious moves a slideshow back one slide, wrapping at the start.
// POST /api/slideshow/{id}/previous
func (h *SlideshowHandler) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	show, err := h.slideshows.Previous(r.PathValue("id"))
	if err != nil {
		h.writeSlideshowError(w, err, "rewind slideshow")
		return
	}
	writeJSON(w, http.StatusOK, toSlideshowDTO(show))
}

// HandlePause pauses an active slideshow.
// POST /api/slideshow/{id}/pause
func (h *SlideshowHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	show, err := h.slideshows.Pause(r.PathValue("id"))
	if err != nil {
		h.writeSlideshowError(w, err, "pause slideshow")
		return
	}
	writeJSON(w, http.StatusOK, toSlideshowDTO(show))
}

// HandleResume resumes a paused slideshow.
// POST /api/slideshow/{id}/resume
func (h *SlideshowHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	show, err := h.slideshows.Resume(r.PathValue("id"))
	if err != nil {
		h.writeSlideshowError(w, err, "resume slideshow")
		return
	}
	writeJSON(w, http.StatusOK, toSlideshowDTO(show))
}

// HandleStop ends a slideshow session.
// POST /api/slideshow/{id}/stop
func (h *SlideshowHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	if err := h.slideshows.Stop(r.PathValue("id")); err != nil {
		h.writeSlideshowError(w, err, "stop slideshow")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SlideshowHandler) writeSlideshowError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "slideshow not found")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
