package gallery

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/storage"
)

const uploadFolder = "gallery"

type Service struct {
	images   GalleryRepository
	store    storage.Store
	resolver *storage.Resolver
}

func NewService(images GalleryRepository, store storage.Store, resolver *storage.Resolver) *Service {
	return &Service{
		images:   images,
		store:    store,
		resolver: resolver,
	}
}

func (s *Service) List(ctx context.Context, category string) ([]ImageResponse, error) {
	images, err := s.images.List(ctx, category)
	if err != nil {
		return nil, err
	}

	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, s.toResponse(&images[i]))
	}
	return out, nil
}

// Create inserts a new portfolio entry. When the image came in as a file, a
// failed insert removes the just-uploaded object so the bucket holds no
// orphans.
func (s *Service) Create(ctx context.Context, req CreateRequest, in domain.ImageInput) (*ImageResponse, error) {
	if in.IsEmpty() {
		return nil, ErrNoImageProvided
	}

	img := &domain.GalleryImage{
		Title:     req.Title,
		Category:  req.Category,
		AltText:   req.AltText,
		CreatedAt: time.Now(),
	}

	var uploadedPath string
	if fh, ok := in.File(); ok {
		path, err := s.store.Upload(ctx, fh, uploadFolder)
		if err != nil {
			return nil, err
		}
		uploadedPath = path
		img.Image = domain.ImageRef{Path: path}
	} else if url, ok := in.URL(); ok {
		img.Image = domain.ImageRef{URL: storage.TrimWrappingQuotes(url)}
	}

	if err := s.images.Create(ctx, img); err != nil {
		if uploadedPath != "" {
			if rmErr := s.store.Remove(ctx, []string{uploadedPath}); rmErr != nil {
				log.Printf("gallery: failed to remove orphaned upload %s: %v", uploadedPath, rmErr)
			}
		}
		return nil, err
	}

	resp := s.toResponse(img)
	return &resp, nil
}

// Update rewrites a portfolio entry. A replacement file is uploaded before the
// old object is removed; the old-object removal is best-effort so a flaky
// bucket cannot block the edit.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest, in domain.ImageInput) (*ImageResponse, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	old := img.Image

	img.Title = req.Title
	img.Category = req.Category
	img.AltText = req.AltText

	replaced := false
	if fh, ok := in.File(); ok {
		path, err := s.store.Upload(ctx, fh, uploadFolder)
		if err != nil {
			return nil, err
		}
		img.Image = domain.ImageRef{Path: path}
		replaced = true
	} else if url, ok := in.URL(); ok {
		img.Image = domain.ImageRef{URL: storage.TrimWrappingQuotes(url)}
		replaced = true
	}

	if replaced && old.Path != "" && old.Path != img.Image.Path {
		if err := s.store.Remove(ctx, []string{old.Path}); err != nil {
			log.Printf("gallery: failed to remove replaced image %s: %v", old.Path, err)
		}
	}

	if err := s.images.Update(ctx, img); err != nil {
		return nil, err
	}

	resp := s.toResponse(img)
	return &resp, nil
}

// Delete removes the row first; the stored object is cleaned up afterwards
// best-effort.
func (s *Service) Delete(ctx context.Context, id int64) error {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.images.Delete(ctx, id); err != nil {
		return err
	}

	if img.Image.Path != "" {
		if err := s.store.Remove(ctx, []string{img.Image.Path}); err != nil {
			log.Printf("gallery: failed to remove deleted image %s: %v", img.Image.Path, err)
		}
	}
	return nil
}

func (s *Service) toResponse(img *domain.GalleryImage) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		Title:     img.Title,
		Category:  img.Category,
		AltText:   img.AltText,
		ImageURL:  s.resolver.DisplayURL(img.Image),
		CreatedAt: img.CreatedAt.Format(time.RFC3339),
	}
}
