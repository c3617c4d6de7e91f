package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Upload validation failures. Both wrap ErrInvalidInput so generic
	// bad-request handling keeps working while callers can still tell the
	// two rejections apart.
	ErrInvalidType = fmt.Errorf("%w: unsupported media type", ErrInvalidInput)
	ErrTooLarge    = fmt.Errorf("%w: file too large", ErrInvalidInput)

	// ErrDecode means the rendering backend could not determine the
	// dimensions of an uploaded image.
	ErrDecode = errors.New("image decode failed")
)
