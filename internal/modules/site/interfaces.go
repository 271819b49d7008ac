package site

import (
	"context"

	"makeupstudio/internal/domain"
)

type ProfileReader interface {
	GetPrimaryOrFirst(ctx context.Context, primaryEmail string) (*domain.AdminProfile, error)
}

type ServiceReader interface {
	List(ctx context.Context, featuredOnly bool) ([]domain.Service, error)
}

type GalleryReader interface {
	List(ctx context.Context, category string) ([]domain.GalleryImage, error)
}

type FAQReader interface {
	List(ctx context.Context) ([]domain.FAQ, error)
}
