package booking

import (
	"context"

	"makeupstudio/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, date string) ([]domain.Booking, error)
	ListForDate(ctx context.Context, date string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
