package profile

import (
	"context"

	"makeupstudio/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AdminProfile, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}
