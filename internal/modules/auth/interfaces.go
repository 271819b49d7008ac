package auth

import (
	"context"

	"makeupstudio/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.AdminProfile) error
	GetByID(ctx context.Context, id int64) (*domain.AdminProfile, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminProfile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type tokenIssuer interface {
	GenerateToken(adminID int64, email string) (string, error)
}
