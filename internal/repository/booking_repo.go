package repository

import (
	"context"
	"time"

	"makeupstudio/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ClientName  string    `gorm:"column:client_name"`
	ClientEmail string    `gorm:"column:client_email"`
	ClientPhone *string   `gorm:"column:client_phone"`
	ServiceID   int64     `gorm:"column:service_id"`
	ServiceName string    `gorm:"column:service_name"`
	BookingDate string    `gorm:"column:booking_date"`
	StartTime   string    `gorm:"column:start_time"`
	EndTime     string    `gorm:"column:end_time"`
	Notes       *string   `gorm:"column:notes"`
	ClientID    *int64    `gorm:"column:client_id"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		ClientName:  m.ClientName,
		ClientEmail: m.ClientEmail,
		ClientPhone: deref(m.ClientPhone),
		ServiceID:   m.ServiceID,
		ServiceName: m.ServiceName,
		BookingDate: m.BookingDate,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Notes:       deref(m.Notes),
		ClientID:    m.ClientID,
		Status:      domain.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		ClientPhone: nullable(b.ClientPhone),
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Notes:       nullable(b.Notes),
		ClientID:    b.ClientID,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// List returns bookings newest first, optionally narrowed to a booking date
// (YYYY-MM-DD).
func (r *BookingRepository) List(ctx context.Context, date string) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Order("booking_date DESC").Order("start_time ASC")
	if date != "" {
		q = q.Where("booking_date = ?", date)
	}

	var rows []bookingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListForDate returns non-cancelled bookings on the given date, earliest
// start first. Used by the reminder job.
func (r *BookingRepository) ListForDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("booking_date = ? AND status <> ?", date, string(domain.BookingCancelled)).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	}).Error
}
