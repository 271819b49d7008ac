package catalog

import (
	"context"

	"makeupstudio/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context, featuredOnly bool) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}
