package handler

import (
	"github.com/msomdec/pixwall/internal/domain"
	"github.com/msomdec/pixwall/internal/service"
)

// ImageDTO is the JSON representation of a gallery record.
type ImageDTO struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Alt         string   `json:"alt"`
	Src         string   `json:"src"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Blurhash    string   `json:"blurhash,omitempty"`
	Categories  []string `json:"categories"`
	Editable    bool     `json:"editable"`
}

func toImageDTO(img domain.Image) ImageDTO {
	categories := img.Categories
	if categories == nil {
		categories = []string{}
	}
	return ImageDTO{
		ID:          img.ID,
		Title:       img.Title,
		Description: img.Description,
		Alt:         img.Alt,
		Src:         img.Src,
		Width:       img.Width,
		Height:      img.Height,
		Blurhash:    img.Placeholder,
		Categories:  categories,
		Editable:    img.Editable,
	}
}

func toImageDTOs(images []domain.Image) []ImageDTO {
	dtos := make([]ImageDTO, len(images))
	for i, img := range images {
		dtos[i] = toImageDTO(img)
	}
	return dtos
}

// SlideDTO is the render-ready slide contract handed to the lightbox and
// slideshow collaborators.
type SlideDTO struct {
	Src         string `json:"src"`
	Alt         string `json:"alt"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func toSlideDTOs(images []domain.Image) []SlideDTO {
	dtos := make([]SlideDTO, len(images))
	for i, img := range images {
		dtos[i] = SlideDTO{
			Src:         img.Src,
			Alt:         img.Alt,
			Title:       img.Title,
			Description: img.Description,
			Width:       img.Width,
			Height:      img.Height,
		}
	}
	return dtos
}

// SlideshowDTO is the JSON representation of a slideshow session.
type SlideshowDTO struct {
	ID          string  `json:"id"`
	SlideIDs    []int64 `json:"slideIds"`
	Current     int     `json:"current"`
	IntervalSec int     `json:"intervalSec"`
	Status      string  `json:"status"`
}

func toSlideshowDTO(show *domain.Slideshow) SlideshowDTO {
	return SlideshowDTO{
		ID:          show.ID,
		SlideIDs:    show.SlideIDs,
		Current:     show.Current,
		IntervalSec: show.IntervalSec,
		Status:      show.Status,
	}
}

// CropDTO mirrors domain.CropRect.
type CropDTO struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// EditRequest is the JSON edit form. Absent percent fields mean identity;
// a non-empty overlayColor enables the overlay composite.
type EditRequest struct {
	Crop         *CropDTO `json:"crop"`
	Rotation     float64  `json:"rotation"`
	Brightness   *float64 `json:"brightness"`
	Contrast     *float64 `json:"contrast"`
	Saturation   *float64 `json:"saturation"`
	Blur         float64  `json:"blur"`
	OverlayColor string   `json:"overlayColor"`
}

func toTransformOptions(req EditRequest) domain.TransformOptions {
	opts := domain.DefaultTransformOptions()
	if req.Crop != nil {
		opts.Crop = &domain.CropRect{
			X:      req.Crop.X,
			Y:      req.Crop.Y,
			Width:  req.Crop.Width,
			Height: req.Crop.Height,
		}
	}
	opts.Rotation = req.Rotation
	if req.Brightness != nil {
		opts.Brightness = *req.Brightness
	}
	if req.Contrast != nil {
		opts.Contrast = *req.Contrast
	}
	if req.Saturation != nil {
		opts.Saturation = *req.Saturation
	}
	opts.Blur = req.Blur
	if req.OverlayColor != "" {
		opts.Overlay = true
		opts.OverlayHex = req.OverlayColor
	}
	return opts
}

// EditResponse reports the edited record plus whether the pipeline
// degraded (returned the original unchanged).
type EditResponse struct {
	Image    ImageDTO `json:"image"`
	Degraded bool     `json:"degraded"`
}

func toEditResponse(result service.TransformResult) EditResponse {
	return EditResponse{Image: toImageDTO(result.Image), Degraded: result.Degraded}
}
