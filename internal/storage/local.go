package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// Local stores objects on disk and serves them from a static URL base. Used
// for development and single-host deployments.
type Local struct {
	baseDir    string
	staticBase string
}

func NewLocal(baseDir, staticBase string) *Local {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/static/uploads"
	}
	return &Local{baseDir: baseDir, staticBase: strings.TrimRight(staticBase, "/")}
}

func (l *Local) BaseDir() string { return l.baseDir }

func (l *Local) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	file, mimeType, err := openImage(fh)
	if err != nil {
		return "", err
	}
	defer file.Close()

	path := objectName(folder, fh.Filename, mimeType)

	absPath := filepath.Join(l.baseDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

func (l *Local) PublicURL(path string) string {
	return l.staticBase + "/" + strings.TrimLeft(path, "/")
}

func (l *Local) Remove(ctx context.Context, paths []string) error {
	var firstErr error
	for _, p := range paths {
		absPath := filepath.Join(l.baseDir, filepath.FromSlash(p))
		if err := os.Remove(absPath); err != nil && !errors.Is(err, os.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
