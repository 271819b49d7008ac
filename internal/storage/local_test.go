package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func formFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestLocal_UploadAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/static/uploads")

	path, err := store.Upload(context.Background(), formFile(t, "look.png", pngHeader), "gallery")
	assert.NoError(t, err)
	assert.Contains(t, path, "gallery/")

	abs := filepath.Join(dir, filepath.FromSlash(path))
	_, err = os.Stat(abs)
	assert.NoError(t, err)

	assert.Equal(t, "/static/uploads/"+path, store.PublicURL(path))

	assert.NoError(t, store.Remove(context.Background(), []string{path}))
	_, err = os.Stat(abs)
	assert.True(t, os.IsNotExist(err))

	// removing a missing object is not an error
	assert.NoError(t, store.Remove(context.Background(), []string{path}))
}

func TestLocal_Upload_RejectsNonImage(t *testing.T) {
	store := NewLocal(t.TempDir(), "/static/uploads")

	_, err := store.Upload(context.Background(), formFile(t, "notes.txt", []byte("just text, not an image")), "gallery")

	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestLocal_Upload_RejectsEmptyFile(t *testing.T) {
	store := NewLocal(t.TempDir(), "/static/uploads")

	_, err := store.Upload(context.Background(), formFile(t, "empty.png", nil), "gallery")

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLocal_Upload_RejectsOversizedFile(t *testing.T) {
	store := NewLocal(t.TempDir(), "/static/uploads")

	fh := formFile(t, "big.png", pngHeader)
	fh.Size = MaxFileSize + 1

	_, err := store.Upload(context.Background(), fh, "gallery")

	assert.ErrorIs(t, err, ErrFileTooLarge)
}
