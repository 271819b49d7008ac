package domain

import "time"

// GalleryImage is a portfolio entry. At least one of Image.URL / Image.Path
// must be set for the record to be displayable.
type GalleryImage struct {
	ID       int64
	Title    string
	Category string
	AltText  string
	Image    ImageRef

	CreatedAt time.Time
}
