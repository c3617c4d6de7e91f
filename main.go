package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/msomdec/pixwall/internal/handler"
	"github.com/msomdec/pixwall/internal/repository/memory"
	"github.com/msomdec/pixwall/internal/repository/sqlite"
	"github.com/msomdec/pixwall/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "8080")
	shareSecret := os.Getenv("SHARE_SECRET")
	if shareSecret == "" {
		slog.Error("SHARE_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(shareSecret) < 32 {
		slog.Error("SHARE_SECRET must be at least 32 characters for HMAC-SHA256 security")
		os.Exit(1)
	}

	uploadsPerMinute := 10.0
	if v := os.Getenv("UPLOADS_PER_MINUTE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			slog.Error("invalid UPLOADS_PER_MINUTE", "value", v)
			os.Exit(1)
		}
		uploadsPerMinute = parsed
	}

	// Image bytes live in an in-memory database for the lifetime of the
	// process only; the gallery keeps no durable state.
	db, err := sqlite.New(":memory:")
	if err != nil {
		slog.Error("failed to open blob database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	blobs, err := sqlite.NewBlobStore(db)
	if err != nil {
		slog.Error("failed to initialize blob store", "error", err)
		os.Exit(1)
	}

	store := memory.NewStore()
	renderer := &service.ImagingRenderer{}
	uploadService := service.NewUploadService(renderer, blobs)
	transformService := service.NewTransformService(renderer, blobs)
	galleryService := service.NewGalleryService(store, blobs, uploadService, transformService)
	shareService := service.NewShareService(galleryService, shareSecret)
	slideshowService := service.NewSlideshowService(galleryService)
	uploadLimiter := service.NewUploadLimiter(uploadsPerMinute)

	// Seed the built-in gallery (idempotent).
	galleryService.Seed()
	slog.Info("gallery seeded", "images", galleryService.Count())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, galleryService, shareService, slideshowService, uploadLimiter)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(handler.RequestLogger(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
