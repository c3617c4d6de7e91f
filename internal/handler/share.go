package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/pixwall/internal/domain"
	"github.com/msomdec/pixwall/internal/service"
)

// ShareHandler issues and resolves signed share links.
type ShareHandler struct {
	shares *service.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(shares *service.ShareService) *ShareHandler {
	return &ShareHandler{shares: shares}
}

type shareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// HandleShareImage issues a share token for a single record.
// POST /api/images/{id}/share
func (h *ShareHandler) HandleShareImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad image id")
		return
	}

	token, err := h.shares.CreateImageShare(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		slog.Error("create image share", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, shareResponse{Token: token, URL: "/api/share/" + token})
}

// HandleShareGallery issues a share token for the current filter state.
// POST /api/share?category=&q=
func (h *ShareHandler) HandleShareGallery(w http.ResponseWriter, r *http.Request) {
	token, err := h.shares.CreateGalleryShare(filterFromQuery(r))
	if err != nil {
		slog.Error("create gallery share", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, shareResponse{Token: token, URL: "/api/share/" + token})
}

// HandleResolveShare resolves a share token into the shared view.
// GET /api/share/{token}
func (h *ShareHandler) HandleResolveShare(w http.ResponseWriter, r *http.Request) {
	view, err := h.shares.Resolve(r.PathValue("token"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnauthorized, "invalid share token")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "shared image no longer exists")
		default:
			slog.Error("resolve share", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	if view.Image != nil {
		writeJSON(w, http.StatusOK, map[string]any{"image": toImageDTO(*view.Image)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": view.Filter.Category,
		"q":        view.Filter.Query,
	})
}
