package domain

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageInput_Variants(t *testing.T) {
	empty := ImageInput{}
	assert.True(t, empty.IsEmpty())
	_, ok := empty.URL()
	assert.False(t, ok)
	_, ok = empty.File()
	assert.False(t, ok)

	fromURL := ImageInputFromURL("https://example.com/a.jpg")
	assert.False(t, fromURL.IsEmpty())
	url, ok := fromURL.URL()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a.jpg", url)
	_, ok = fromURL.File()
	assert.False(t, ok)

	fh := &multipart.FileHeader{Filename: "a.jpg"}
	fromFile := ImageInputFromFile(fh)
	assert.False(t, fromFile.IsEmpty())
	got, ok := fromFile.File()
	assert.True(t, ok)
	assert.Same(t, fh, got)
	// a file-backed input never reports a URL
	_, ok = fromFile.URL()
	assert.False(t, ok)
}

func TestImageInput_EmptyURLIsEmpty(t *testing.T) {
	in := ImageInputFromURL("")
	assert.True(t, in.IsEmpty())
	_, ok := in.URL()
	assert.False(t, ok)
}

func TestImageRef_IsZero(t *testing.T) {
	assert.True(t, ImageRef{}.IsZero())
	assert.False(t, ImageRef{URL: "x"}.IsZero())
	assert.False(t, ImageRef{Path: "y"}.IsZero())
}
