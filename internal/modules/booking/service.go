package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/notification"
)

type Service struct {
	bookings BookingRepository
	services ServiceReader
	notifier notification.Notifier
}

func NewService(bookings BookingRepository, services ServiceReader, notifier notification.Notifier) *Service {
	return &Service{
		bookings: bookings,
		services: services,
		notifier: notifier,
	}
}

// Create records a public booking request. The end time is derived from the
// booked service's duration; the client never supplies it. clientID is set
// when the request carried a valid session.
func (s *Service) Create(ctx context.Context, req CreateRequest, clientID *int64) (*BookingResponse, error) {
	if _, err := time.Parse("2006-01-02", req.BookingDate); err != nil {
		return nil, ErrInvalidDate
	}
	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownService
		}
		return nil, err
	}

	b := &domain.Booking{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ServiceID:   svc.ID,
		ServiceName: svc.Title,
		BookingDate: req.BookingDate,
		StartTime:   start.Format("15:04"),
		EndTime:     start.Add(time.Duration(svc.Duration) * time.Minute).Format("15:04"),
		Notes:       req.Notes,
		ClientID:    clientID,
		Status:      domain.BookingPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.BookingConfirmation(b)
	}

	resp := toResponse(b)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, date string) ([]BookingResponse, error) {
	items, err := s.bookings.List(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]BookingResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*BookingResponse, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toResponse(b)
	return &resp, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*BookingResponse, error) {
	switch domain.BookingStatus(status) {
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatus(status)); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func toResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		ClientPhone: b.ClientPhone,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Notes:       b.Notes,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
