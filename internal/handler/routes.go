package handler

import (
	"net/http"

	"github.com/msomdec/pixwall/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, gallery *service.GalleryService, shares *service.ShareService, slideshows *service.SlideshowService, uploadLimiter *service.UploadLimiter) {
	galleryHandler := NewGalleryHandler(gallery)
	imageHandler := NewImageHandler(gallery)
	shareHandler := NewShareHandler(shares)
	slideshowHandler := NewSlideshowHandler(slideshows)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /api/images", galleryHandler.HandleList)
	mux.HandleFunc("GET /api/categories", galleryHandler.HandleCategories)
	mux.HandleFunc("GET /api/slides", galleryHandler.HandleSlides)
	mux.HandleFunc("POST /api/images/reorder", galleryHandler.HandleReorder)

	// Uploads are the only rate limited surface.
	mux.Handle("POST /api/images", RateLimit(uploadLimiter, http.HandlerFunc(imageHandler.HandleUpload)))
	mux.HandleFunc("POST /api/images/{id}/edit", imageHandler.HandleEdit)
	mux.HandleFunc("GET /api/images/{id}/placeholder", imageHandler.HandlePlaceholder)
	mux.HandleFunc("GET /blobs/{key}", imageHandler.HandleServeBlob)

	mux.HandleFunc("POST /api/images/{id}/share", shareHandler.HandleShareImage)
	mux.HandleFunc("POST /api/share", shareHandler.HandleShareGallery)
	mux.HandleFunc("GET /api/share/{token}", shareHandler.HandleResolveShare)

	mux.HandleFunc("POST /api/slideshow", slideshowHandler.HandleStart)
	mux.HandleFunc("GET /api/slideshow/{id}", slideshowHandler.HandleGet)
	mux.HandleFunc("POST /api/slideshow/{id}/advance", slideshowHandler.HandleAdvance)
	mux.HandleFunc("POST /api/slideshow/{id}/previous", slideshowHandler.HandlePrevious)
	mux.HandleFunc("POST /api/slideshow/{id}/pause", slideshowHandler.HandlePause)
	mux.HandleFunc("POST /api/slideshow/{id}/resume", slideshowHandler.HandleResume)
	mux.HandleFunc("POST /api/slideshow/{id}/stop", slideshowHandler.HandleStop)
}
