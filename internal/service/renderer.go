package service

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ImagingRenderer implements domain.Renderer with the imaging codecs
// (JPEG, PNG, GIF, TIFF, BMP).
type ImagingRenderer struct{}

func (ImagingRenderer) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func (ImagingRenderer) Bounds(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

func (ImagingRenderer) Encode(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
