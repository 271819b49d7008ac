package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Cloudinary stores objects in a managed Cloudinary bucket. The stored path
// is the asset's public ID (folder included), so PublicURL stays a pure
// derivation from the cloud name.
type Cloudinary struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

func NewCloudinary(cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld, cloudName: cloudName}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	file, _, err := openImage(fh)
	if err != nil {
		return "", err
	}
	defer file.Close()

	publicID := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString())
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return resp.PublicID, nil
}

func (c *Cloudinary) PublicURL(path string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s", c.cloudName, strings.TrimLeft(path, "/"))
}

func (c *Cloudinary) Remove(ctx context.Context, paths []string) error {
	var firstErr error
	for _, p := range paths {
		if _, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: p}); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
