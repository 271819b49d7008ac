package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
)

// Store abstracts the image bucket. Upload validates size and MIME and
// returns the stored path; PublicURL is a pure derivation that never fails;
// Remove is best-effort and callers are expected to log-and-swallow.
type Store interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error)
	PublicURL(path string) string
	Remove(ctx context.Context, paths []string) error
}

// openImage opens the upload, enforces the size cap and image/* MIME (sniffed
// from content, not trusted from the header), and returns the file rewound to
// the start.
func openImage(fh *multipart.FileHeader) (multipart.File, string, error) {
	if fh.Size == 0 {
		return nil, "", ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return nil, "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !strings.HasPrefix(mimeType, "image/") {
		file.Close()
		return nil, "", ErrInvalidMimeType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, "", fmt.Errorf("failed to rewind file: %w", err)
	}
	return file, mimeType, nil
}

// objectName builds a collision-free stored name: <folder>/<unixms>-<uuid><ext>.
func objectName(folder, original, mimeType string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), uuid.NewString(), ext)
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ".img"
	}
}
