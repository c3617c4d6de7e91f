package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/pixwall/internal/domain"
	"github.com/msomdec/pixwall/internal/service"
)

const (
	defaultPlaceholderSize = 32
	maxPlaceholderSize     = 128
)

// ImageHandler handles uploads, blob serving, placeholder previews, and
// edits.
type ImageHandler struct {
	gallery *service.GalleryService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(gallery *service.GalleryService) *ImageHandler {
	return &ImageHandler{gallery: gallery}
}

// HandleUpload processes a multipart image upload.
// POST /api/images
func (h *ImageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	// Size validation belongs to the ingestion service; the form limit
	// here only bounds what is buffered in memory.
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no image file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Detect the media type from the bytes rather than trusting the
	// multipart header.
	contentType := http.DetectContentType(data)

	img, err := h.gallery.Upload(r.Context(), header.Filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrDecode):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("upload image", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toImageDTO(img))
}

// HandleServeBlob serves stored image bytes with their content type.
// GET /blobs/{key}
func (h *ImageHandler) HandleServeBlob(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	data, contentType, err := h.gallery.Blob(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("serve blob", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// HandlePlaceholder renders a record's blurhash preview as a small PNG.
// GET /api/images/{id}/placeholder?w=&h=
func (h *ImageHandler) HandlePlaceholder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad image id")
		return
	}

	width := placeholderDim(r.URL.Query().Get("w"))
	height := placeholderDim(r.URL.Query().Get("h"))

	data, err := h.gallery.Placeholder(id, width, height)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		slog.Error("render placeholder", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.Write(data)
}

func placeholderDim(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return defaultPlaceholderSize
	}
	if v > maxPlaceholderSize {
		return maxPlaceholderSize
	}
	return v
}

// HandleEdit runs the transformation pipeline for a record and reports
// the result, flagging degraded invocations instead of failing them.
// POST /api/images/{id}/edit
func (h *ImageHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad image id")
		return
	}

	var req EditRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid edit request")
		return
	}

	result, err := h.gallery.SaveEdit(r.Context(), id, toTransformOptions(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "image not found")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("edit image", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toEditResponse(result))
}
