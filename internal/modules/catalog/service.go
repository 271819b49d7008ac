package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/storage"
)

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) List(ctx context.Context, featuredOnly bool) ([]ServiceResponse, error) {
	items, err := s.services.List(ctx, featuredOnly)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*ServiceResponse, error) {
	item, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Create(ctx context.Context, req ServiceRequest) (*ServiceResponse, error) {
	item := &domain.Service{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		ImageURL:    storage.TrimWrappingQuotes(req.ImageURL),
		Featured:    req.Featured,
		CreatedAt:   time.Now(),
	}
	if err := s.services.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req ServiceRequest) (*ServiceResponse, error) {
	item, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item.Title = req.Title
	item.Description = req.Description
	item.Price = req.Price
	item.Duration = req.Duration
	item.Category = req.Category
	item.ImageURL = storage.TrimWrappingQuotes(req.ImageURL)
	item.Featured = req.Featured

	if err := s.services.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.services.Delete(ctx, id)
}

func toResponse(item *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Duration:    item.Duration,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Featured:    item.Featured,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	}
}
