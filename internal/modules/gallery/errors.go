package gallery

import "errors"

var (
	ErrNotFound        = errors.New("gallery image not found")
	ErrNoImageProvided = errors.New("either an image file or an image URL is required")
)
