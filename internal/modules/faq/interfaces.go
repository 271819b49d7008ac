package faq

import (
	"context"

	"makeupstudio/internal/domain"
)

type FAQRepository interface {
	List(ctx context.Context) ([]domain.FAQ, error)
	GetByID(ctx context.Context, id int64) (*domain.FAQ, error)
	Create(ctx context.Context, f *domain.FAQ) error
	Update(ctx context.Context, f *domain.FAQ) error
	Delete(ctx context.Context, id int64) error
}
