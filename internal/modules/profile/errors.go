package profile

import "errors"

var (
	ErrUnknownBioField   = errors.New("unknown bio field")
	ErrUnknownImageField = errors.New("unknown image field")
	ErrNoImageProvided   = errors.New("either an image file or an image URL is required")
)
