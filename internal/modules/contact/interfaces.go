package contact

import (
	"context"

	"makeupstudio/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, s *domain.ContactSubmission) error
}
