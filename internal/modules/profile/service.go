package profile

import (
	"context"
	"log"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/storage"
)

const uploadFolder = "about"

// Service owns the artist profile shown on the public about page.
type Service struct {
	profiles ProfileRepository
	store    storage.Store
	resolver *storage.Resolver
}

func NewService(profiles ProfileRepository, store storage.Store, resolver *storage.Resolver) *Service {
	return &Service{
		profiles: profiles,
		store:    store,
		resolver: resolver,
	}
}

func (s *Service) Get(ctx context.Context, adminID int64) (*ProfileResponse, error) {
	p, err := s.profiles.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(p), nil
}

func (s *Service) UpdateBio(ctx context.Context, adminID int64, req UpdateBioRequest) (*ProfileResponse, error) {
	var column string
	switch req.Field {
	case "bio":
		column = "bio"
	case "bio_2":
		column = "bio_2"
	default:
		return nil, ErrUnknownBioField
	}

	if err := s.profiles.UpdateFields(ctx, adminID, map[string]any{column: req.Text}); err != nil {
		return nil, err
	}
	return s.Get(ctx, adminID)
}

// UpdateImage swaps one of the two about-page images. With a file input the
// new object is uploaded first, then the old stored object is removed
// best-effort, then the row is written, so a failed cleanup never loses the
// new image.
func (s *Service) UpdateImage(ctx context.Context, adminID int64, field string, in domain.ImageInput) (*ProfileResponse, error) {
	var urlColumn, pathColumn string
	var current func(*domain.AdminProfile) domain.ImageRef
	switch field {
	case "about_image_1":
		urlColumn, pathColumn = "about_image_1", "about_image_1_path"
		current = func(p *domain.AdminProfile) domain.ImageRef { return p.AboutImage1 }
	case "about_image_2":
		urlColumn, pathColumn = "about_image_2", "about_image_2_path"
		current = func(p *domain.AdminProfile) domain.ImageRef { return p.AboutImage2 }
	default:
		return nil, ErrUnknownImageField
	}
	if in.IsEmpty() {
		return nil, ErrNoImageProvided
	}

	p, err := s.profiles.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	old := current(p)

	fields := map[string]any{}
	if fh, ok := in.File(); ok {
		path, err := s.store.Upload(ctx, fh, uploadFolder)
		if err != nil {
			return nil, err
		}
		fields[urlColumn] = nil
		fields[pathColumn] = path
	} else if url, ok := in.URL(); ok {
		fields[urlColumn] = storage.TrimWrappingQuotes(url)
		fields[pathColumn] = nil
	}

	if old.Path != "" {
		if err := s.store.Remove(ctx, []string{old.Path}); err != nil {
			log.Printf("profile: failed to remove replaced image %s: %v", old.Path, err)
		}
	}

	if err := s.profiles.UpdateFields(ctx, adminID, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, adminID)
}

func (s *Service) toResponse(p *domain.AdminProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:          p.ID,
		Email:       p.Email,
		Bio:         p.Bio,
		Bio2:        p.Bio2,
		AboutImage1: s.resolver.DisplayURL(p.AboutImage1),
		AboutImage2: s.resolver.DisplayURL(p.AboutImage2),
	}
}
