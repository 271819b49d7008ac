package domain

import "mime/multipart"

// ImageRef points at a displayable image. Path is the stored object in the
// asset bucket and is canonical when present; URL is a direct link kept for
// records that were never uploaded through us.
type ImageRef struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

func (r ImageRef) IsZero() bool { return r.URL == "" && r.Path == "" }

// ImageInput is the pending image choice on an admin form: a direct URL, a
// file to upload, or nothing. The constructors set exactly one variant, so a
// "both populated" state cannot be built.
type ImageInput struct {
	url  string
	file *multipart.FileHeader
}

func ImageInputFromURL(url string) ImageInput {
	return ImageInput{url: url}
}

func ImageInputFromFile(fh *multipart.FileHeader) ImageInput {
	return ImageInput{file: fh}
}

func (in ImageInput) URL() (string, bool) {
	if in.file != nil || in.url == "" {
		return "", false
	}
	return in.url, true
}

func (in ImageInput) File() (*multipart.FileHeader, bool) {
	if in.file == nil {
		return nil, false
	}
	return in.file, true
}

func (in ImageInput) IsEmpty() bool {
	return in.file == nil && in.url == ""
}
