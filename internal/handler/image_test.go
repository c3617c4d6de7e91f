package handler_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func uploadImage(t *testing.T, mux *http.ServeMux, filename string, data []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w.Result()
}

func TestImageHandler_Upload(t *testing.T) {
	mux := newTestMux(t)

	resp := uploadImage(t, mux, "beach_day.jpg", testJPEG(t, 16, 12))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}

	var img map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&img); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if img["title"] != "Beach Day" {
		t.Fatalf("expected title 'Beach Day', got %v", img["title"])
	}
	if editable, _ := img["editable"].(bool); !editable {
		t.Fatal("uploads must be editable")
	}

	// The upload shows up first in the listing.
	_, body := doJSON(t, mux, http.MethodGet, "/api/images", "")
	if count, _ := body["count"].(float64); count != 13 {
		t.Fatalf("expected 13 images, got %v", body["count"])
	}
	images, _ := body["images"].([]any)
	first, _ := images[0].(map[string]any)
	if first["title"] != "Beach Day" {
		t.Fatalf("expected the upload first, got %v", first["title"])
	}

	// Its bytes are served under /blobs/.
	src, _ := img["src"].(string)
	req := httptest.NewRequest(http.MethodGet, src, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	blobResp := w.Result()
	defer blobResp.Body.Close()
	if blobResp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", src, blobResp.StatusCode)
	}
	if ct := blobResp.Header.Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", ct)
	}
}

func TestImageHandler_Upload_RejectsNonImage(t *testing.T) {
	mux := newTestMux(t)

	resp := uploadImage(t, mux, "notes.txt", []byte("plain text, not an image"))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestImageHandler_Upload_MissingFile(t *testing.T) {
	mux := newTestMux(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("name", "no file here")
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestImageHandler_Edit(t *testing.T) {
	mux := newTestMux(t)

	resp := uploadImage(t, mux, "photo.jpg", testJPEG(t, 20, 15))
	var img map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&img); err != nil {
		t.Fatalf("decode upload: %v", err)
	}
	resp.Body.Close()
	id := int64(img["id"].(float64))

	editResp, body := doJSON(t, mux, http.MethodPost,
		"/api/images/"+strconv.FormatInt(id, 10)+"/edit",
		`{"crop":{"x":2,"y":2,"width":8,"height":6},"rotation":90,"brightness":120}`)
	if editResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", editResp.StatusCode)
	}
	if degraded, _ := body["degraded"].(bool); degraded {
		t.Fatal("expected a completed edit")
	}
	edited, _ := body["image"].(map[string]any)
	if w, _ := edited["width"].(float64); w != 8 {
		t.Fatalf("expected cropped width 8, got %v", edited["width"])
	}
	if edited["src"] == img["src"] {
		t.Fatal("expected the edit to produce fresh bytes")
	}
}

func TestImageHandler_Edit_SeededRecordRejected(t *testing.T) {
	mux := newTestMux(t)

	resp, _ := doJSON(t, mux, http.MethodPost, "/api/images/1/edit", `{"brightness":120}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-editable record, got %d", resp.StatusCode)
	}
}

func TestImageHandler_Edit_UnknownRecord(t *testing.T) {
	mux := newTestMux(t)

	resp, _ := doJSON(t, mux, http.MethodPost, "/api/images/424242/edit", `{"brightness":120}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestImageHandler_Placeholder(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/images/2/placeholder?w=48&h=36", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decode placeholder: %v", err)
	}
	if img.Bounds().Dx() != 48 || img.Bounds().Dy() != 36 {
		t.Fatalf("expected 48x36, got %v", img.Bounds())
	}
}

func TestImageHandler_Placeholder_DimensionsClamped(t *testing.T) {
	mux := newTestMux(t)

	// Out-of-range sizes fall back to safe values.
	req := httptest.NewRequest(http.MethodGet, "/api/images/2/placeholder?w=9999&h=-5", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decode placeholder: %v", err)
	}
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 32 {
		t.Fatalf("expected 128x32, got %v", img.Bounds())
	}
}

func TestImageHandler_ServeBlob_Missing(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/blobs/no-such-key", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
