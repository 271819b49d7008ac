package faq

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type Service struct {
	faqs FAQRepository
}

func NewService(faqs FAQRepository) *Service {
	return &Service{faqs: faqs}
}

func (s *Service) List(ctx context.Context) ([]FAQResponse, error) {
	items, err := s.faqs.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]FAQResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req FAQRequest) (*FAQResponse, error) {
	item := &domain.FAQ{
		Question:     req.Question,
		Answer:       req.Answer,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}
	if err := s.faqs.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req FAQRequest) (*FAQResponse, error) {
	item, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item.Question = req.Question
	item.Answer = req.Answer
	item.Category = req.Category
	item.DisplayOrder = req.DisplayOrder

	if err := s.faqs.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.faqs.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.faqs.Delete(ctx, id)
}

func toResponse(f *domain.FAQ) FAQResponse {
	return FAQResponse{
		ID:           f.ID,
		Question:     f.Question,
		Answer:       f.Answer,
		Category:     f.Category,
		DisplayOrder: f.DisplayOrder,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
	}
}
